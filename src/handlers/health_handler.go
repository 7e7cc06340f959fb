package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/db"
)

// Health always answers 200; a failed database probe only downgrades the
// reported status.
func Health(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		databaseStatus := "OK"
		if err := db.Probe(r.Context(), pool); err != nil {
			log.Printf("ERROR: Health probe failed: %v", err)
			status = "degraded"
			databaseStatus = "ERROR"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":          status,
			"timestamp":       time.Now().Format(time.RFC3339),
			"database_status": databaseStatus,
		})
	}
}
