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

	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

func GetAllBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		budgets, err := db.GetAllBudgets(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func GetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "budget_id")
		budget, err := db.GetBudgetByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "budget not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get budget %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			ID         string           `json:"budget_id"`
			Category   string           `json:"category"`
			Amount     *decimal.Decimal `json:"amount"`
			Period     string           `json:"period"`
			StartDate  string           `json:"start_date"`
			EndDate    string           `json:"end_date"`
			IsExceeded bool             `json:"is_exceeded"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Category == "" || req.Amount == nil || req.Period == "" || req.StartDate == "" || req.EndDate == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		created, err := db.CreateBudget(r.Context(), pool, &models.Budget{
			ID:         req.ID,
			UserID:     userID,
			Category:   req.Category,
			Amount:     *req.Amount,
			Period:     req.Period,
			StartDate:  startDate,
			EndDate:    endDate,
			IsExceeded: req.IsExceeded,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created budget %s for user %s, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "budget_id")

		var req struct {
			models.BudgetUpdate
			StartDate *string `json:"start_date"`
			EndDate   *string `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.StartDate != nil {
			startDate, err := parseDate(*req.StartDate)
			if err != nil {
				http.Error(w, "invalid start_date", http.StatusBadRequest)
				return
			}
			req.BudgetUpdate.StartDate = &startDate
		}
		if req.EndDate != nil {
			endDate, err := parseDate(*req.EndDate)
			if err != nil {
				http.Error(w, "invalid end_date", http.StatusBadRequest)
				return
			}
			req.BudgetUpdate.EndDate = &endDate
		}

		upd := req.BudgetUpdate
		if upd.Category == nil && upd.Amount == nil && upd.Period == nil &&
			upd.StartDate == nil && upd.EndDate == nil && upd.IsExceeded == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateBudget(r.Context(), pool, userID, id, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "budget not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update budget %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated budget %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "budget_id")

		if err := db.DeleteBudget(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "budget not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete budget %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Deleted budget %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "budget deleted"})
	}
}
