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

func GetAllInvestments(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		investments, err := db.GetAllInvestments(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get investments: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(investments)
	}
}

func GetInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "investment_id")
		investment, err := db.GetInvestmentByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "investment not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get investment %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(investment)
	}
}

func CreateInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			ID           string           `json:"investment_id"`
			Name         string           `json:"name"`
			Type         string           `json:"type"`
			Amount       *decimal.Decimal `json:"amount"`
			PurchaseDate string           `json:"purchase_date"`
			CurrentValue *decimal.Decimal `json:"current_value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create investment request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.Type == "" || req.Amount == nil || req.PurchaseDate == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		purchaseDate, err := parseDate(req.PurchaseDate)
		if err != nil {
			http.Error(w, "invalid purchase_date", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		created, err := db.CreateInvestment(r.Context(), pool, &models.Investment{
			ID:           req.ID,
			UserID:       userID,
			Name:         req.Name,
			Type:         req.Type,
			Amount:       *req.Amount,
			PurchaseDate: purchaseDate,
			CurrentValue: req.CurrentValue,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create investment for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created investment %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "investment_id")

		var req struct {
			models.InvestmentUpdate
			PurchaseDate *string `json:"purchase_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update investment request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.PurchaseDate != nil {
			purchaseDate, err := parseDate(*req.PurchaseDate)
			if err != nil {
				http.Error(w, "invalid purchase_date", http.StatusBadRequest)
				return
			}
			req.InvestmentUpdate.PurchaseDate = &purchaseDate
		}

		upd := req.InvestmentUpdate
		if upd.Name == nil && upd.Type == nil && upd.Amount == nil &&
			upd.PurchaseDate == nil && upd.CurrentValue == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateInvestment(r.Context(), pool, userID, id, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "investment not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update investment %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated investment %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "investment_id")

		if err := db.DeleteInvestment(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "investment not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete investment %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Deleted investment %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "investment deleted"})
	}
}
