package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	cache "pfbms-server/src/db"
	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

func GetAllNotifications(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		notifications, err := db.GetAllNotifications(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get notifications: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notifications)
	}
}

func CreateNotification(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Content string `json:"content"`
			Type    string `json:"type"`
			IsRead  bool   `json:"is_read"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create notification request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Content == "" || req.Type == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}

		created, err := db.CreateNotification(r.Context(), pool, &models.Notification{
			UserID:  userID,
			Content: req.Content,
			Type:    req.Type,
			IsRead:  req.IsRead,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create notification for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Created notification %d for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateNotification flips the read flag; an absent is_read field marks
// the notification as read.
func UpdateNotification(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		idStr := chi.URLParam(r, "notification_id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid notification id param: %s", idStr)
			http.Error(w, "invalid notification id", http.StatusBadRequest)
			return
		}

		var req struct {
			IsRead *bool `json:"is_read"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update notification request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		isRead := true
		if req.IsRead != nil {
			isRead = *req.IsRead
		}

		updated, err := db.SetNotificationRead(r.Context(), pool, userID, id, isRead)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update notification %d for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Updated notification %d for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteNotification(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		idStr := chi.URLParam(r, "notification_id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid notification id param: %s", idStr)
			http.Error(w, "invalid notification id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteNotification(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete notification %d for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Deleted notification %d for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "notification deleted"})
	}
}
