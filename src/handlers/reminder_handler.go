package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	cache "pfbms-server/src/db"
	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

func GetAllReminders(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		reminders, err := db.GetAllReminders(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get reminders: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reminders)
	}
}

func GetReminder(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "reminder_id")
		reminder, err := db.GetReminderByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get reminder %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reminder)
	}
}

func CreateReminder(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			ID          string           `json:"reminder_id"`
			Title       string           `json:"title"`
			Category    *string          `json:"category"`
			Description *string          `json:"description"`
			Amount      *decimal.Decimal `json:"amount"`
			DueDate     string           `json:"due_date"`
			Recurring   bool             `json:"recurring"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create reminder request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Title == "" || req.Amount == nil || req.DueDate == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			http.Error(w, "invalid due_date", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		created, err := db.CreateReminder(r.Context(), pool, &models.Reminder{
			ID:          req.ID,
			UserID:      userID,
			Title:       req.Title,
			Category:    req.Category,
			Description: req.Description,
			Amount:      *req.Amount,
			DueDate:     dueDate,
			Recurring:   req.Recurring,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create reminder for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Created reminder %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateReminder(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "reminder_id")

		var req struct {
			models.ReminderUpdate
			DueDate *string `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update reminder request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.DueDate != nil {
			dueDate, err := parseDate(*req.DueDate)
			if err != nil {
				http.Error(w, "invalid due_date", http.StatusBadRequest)
				return
			}
			req.ReminderUpdate.DueDate = &dueDate
		}

		upd := req.ReminderUpdate
		if upd.Title == nil && upd.Category == nil && upd.Description == nil &&
			upd.Amount == nil && upd.DueDate == nil && upd.Recurring == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateReminder(r.Context(), pool, userID, id, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update reminder %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Updated reminder %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteReminder(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "reminder_id")

		if err := db.DeleteReminder(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete reminder %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Deleted reminder %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "reminder deleted"})
	}
}
