package models

import (
	"encoding/json"
	"time"
)

// Report carries an opaque JSON payload. The payload is stored as text and
// parsed back on read; malformed stored data degrades to an empty object.
type Report struct {
	ID        string          `json:"report_id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}
