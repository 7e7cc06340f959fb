package models

type Preference struct {
	UserID        string `json:"user_id"`
	Currency      string `json:"currency"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

type PreferenceUpdate struct {
	Currency      *string `json:"currency"`
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
}
