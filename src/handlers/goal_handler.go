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

func GetAllGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("user_id")
		goals, err := db.GetAllGoals(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get goals: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}

func GetGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "goal_id")
		goal, err := db.GetGoalByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get goal %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	}
}

func CreateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			ID            string           `json:"goal_id"`
			Name          string           `json:"name"`
			TargetAmount  *decimal.Decimal `json:"target_amount"`
			CurrentAmount *decimal.Decimal `json:"current_amount"`
			Deadline      string           `json:"deadline"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.TargetAmount == nil {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}

		goal := &models.Goal{
			ID:           req.ID,
			UserID:       userID,
			Name:         req.Name,
			TargetAmount: *req.TargetAmount,
		}
		if goal.ID == "" {
			goal.ID = uuid.NewString()
		}
		if req.CurrentAmount != nil {
			goal.CurrentAmount = *req.CurrentAmount
		}
		if req.Deadline != "" {
			deadline, err := parseDate(req.Deadline)
			if err != nil {
				http.Error(w, "invalid deadline", http.StatusBadRequest)
				return
			}
			goal.Deadline = &deadline
		}

		created, err := db.CreateGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to create goal for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created goal %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "goal_id")

		var req struct {
			models.GoalUpdate
			Deadline *string `json:"deadline"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Deadline != nil {
			deadline, err := parseDate(*req.Deadline)
			if err != nil {
				http.Error(w, "invalid deadline", http.StatusBadRequest)
				return
			}
			req.GoalUpdate.Deadline = &deadline
		}

		upd := req.GoalUpdate
		if upd.Name == nil && upd.TargetAmount == nil && upd.CurrentAmount == nil && upd.Deadline == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateGoal(r.Context(), pool, userID, id, &upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update goal %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated goal %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "goal_id")

		if err := db.DeleteGoal(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete goal %s for user %s: %v", id, userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Deleted goal %s for user %s", id, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "goal deleted"})
	}
}
