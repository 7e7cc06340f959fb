package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

func GetPreferences(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		userID := chi.URLParam(r, "user_id")
		if userID != authedID {
			log.Printf("ERROR: Forbidden preferences access - Authenticated: %s, Requested: %s", authedID, userID)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		preferences, err := db.GetPreferenceByUserID(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "preferences not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get preferences for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(preferences)
	}
}

// CreatePreferences inserts the one-to-one preferences row with defaults
// for anything the request omits; a second create for the same user is a
// conflict, not an upsert.
func CreatePreferences(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		userID := chi.URLParam(r, "user_id")
		if userID != authedID {
			log.Printf("ERROR: Forbidden preferences create - Authenticated: %s, Requested: %s", authedID, userID)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		preference := models.Preference{
			UserID:        userID,
			Currency:      "USD",
			Theme:         "light",
			Notifications: true,
		}
		var req models.PreferenceUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create preferences request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Currency != nil {
			preference.Currency = *req.Currency
		}
		if req.Theme != nil {
			preference.Theme = *req.Theme
		}
		if req.Notifications != nil {
			preference.Notifications = *req.Notifications
		}

		created, err := db.CreatePreference(r.Context(), pool, &preference)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				http.Error(w, "preferences already exist", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create preferences for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created preferences for user %s", userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdatePreferences(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		userID := chi.URLParam(r, "user_id")
		if userID != authedID {
			log.Printf("ERROR: Forbidden preferences update - Authenticated: %s, Requested: %s", authedID, userID)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var upd models.PreferenceUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			log.Printf("ERROR: Failed to decode update preferences request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if upd.Currency == nil && upd.Theme == nil && upd.Notifications == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdatePreference(r.Context(), pool, userID, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "preferences not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update preferences for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated preferences for user %s", userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}
