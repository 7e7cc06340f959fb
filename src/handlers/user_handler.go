package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	db "pfbms-server/src/db/sql"
	"pfbms-server/src/models"
	"pfbms-server/src/util"
)

func GetAllUsers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetAllUsers(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get users: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func GetUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "user_id")
		user, err := db.GetUserByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get user %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func CreateUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID   string `json:"user_id"`
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create user request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = util.NormalizeEmail(req.Email)
		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		if !util.ValidateEmail(req.Email) {
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			req.UserID = uuid.NewString()
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		user, err := db.CreateUser(r.Context(), pool, &models.User{
			ID:           req.UserID,
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hashedPassword,
		})
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Create user failed - duplicate id or email - ID: %s, Email: %s", req.UserID, req.Email)
				http.Error(w, "user id or email already exists", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created user %s (%s)", user.ID, user.Email)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

func UpdateUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "user_id")
		if id != authedID {
			log.Printf("ERROR: Forbidden user update attempt - Authenticated: %s, Requested: %s", authedID, id)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			log.Printf("ERROR: Failed to decode update user request body for %s: %v", id, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if upd.Name == nil && upd.Email == nil && upd.Password == nil {
			http.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}
		if upd.Email != nil {
			normalized := util.NormalizeEmail(*upd.Email)
			if !util.ValidateEmail(normalized) {
				http.Error(w, "invalid email format", http.StatusBadRequest)
				return
			}
			upd.Email = &normalized
		}

		var passwordHash []byte
		if upd.Password != nil {
			if !util.ValidatePassword(*upd.Password) {
				http.Error(w, "password must be at least 8 characters", http.StatusBadRequest)
				return
			}
			var err error
			passwordHash, err = bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("ERROR: Failed to hash new password for user %s: %v", id, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		user, err := db.UpdateUser(r.Context(), pool, id, &upd, passwordHash)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update user %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated user %s", id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func DeleteUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authedID := r.Context().Value("user_id").(string)
		id := chi.URLParam(r, "user_id")
		if id != authedID {
			log.Printf("ERROR: Forbidden user delete attempt - Authenticated: %s, Requested: %s", authedID, id)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := db.DeleteUser(r.Context(), pool, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete user %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Deleted user %s and all dependent rows", id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "user deleted"})
	}
}
