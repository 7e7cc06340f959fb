package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	cache "pfbms-server/src/db"
	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
	"pfbms-server/src/util"
)

// parseDate accepts the plain calendar form used by the web client as well
// as full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func GetAllTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		transactions, err := db.GetAllTransactions(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func GetTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "transaction_id")
		transaction, err := db.GetTransactionByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "transaction not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get transaction %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transaction)
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			ID          string           `json:"transaction_id"`
			Type        string           `json:"type"`
			Amount      *decimal.Decimal `json:"amount"`
			Date        string           `json:"date"`
			Category    *string          `json:"category"`
			Description *string          `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Type == "" || req.Amount == nil || req.Date == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		if !util.ValidateTransactionType(req.Type) {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		created, err := db.CreateTransaction(r.Context(), pool, &models.Transaction{
			ID:          req.ID,
			UserID:      userID,
			Type:        req.Type,
			Amount:      *req.Amount,
			Date:        date,
			Category:    req.Category,
			Description: req.Description,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Created transaction %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "transaction_id")

		var req struct {
			models.TransactionUpdate
			Date *string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
			req.TransactionUpdate.Date = &date
		}
		if req.Type != nil && !util.ValidateTransactionType(*req.Type) {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}

		upd := req.TransactionUpdate
		if upd.Type == nil && upd.Amount == nil && upd.Date == nil && upd.Category == nil && upd.Description == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateTransaction(r.Context(), pool, userID, id, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "transaction not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Updated transaction %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "transaction_id")

		if err := db.DeleteTransaction(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "transaction not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.InvalidateSummary(userID)
		log.Printf("INFO: Deleted transaction %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "transaction deleted"})
	}
}
