package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	cache "pfbms-server/src/db"
	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
)

func DashboardSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		userID := chi.URLParam(r, "user_id")
		if userID != authedID {
			log.Printf("ERROR: Forbidden dashboard access - Authenticated: %s, Requested: %s", authedID, userID)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if cached, ok := cache.GetSummaryCache(userID); ok {
			if summary, ok := cached.(*models.DashboardSummary); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(summary)
				return
			}
		}

		summary, err := db.GetDashboardSummary(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to build dashboard summary for user %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cache.SetSummaryCache(userID, summary)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
