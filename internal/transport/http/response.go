package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/transport/http/middleware"
)

// apiResponse is the standard JSON envelope for all endpoints.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Success: false, Error: msg})
}

// authorizeProfile rejects requests whose bearer token belongs to a different
// profile than the one addressed. A request with no authenticated profile in
// its context passes; the auth middleware guarantees one on protected routes.
func authorizeProfile(w http.ResponseWriter, r *http.Request, profileID uuid.UUID) bool {
	authID := middleware.GetProfileID(r)
	if authID != uuid.Nil && authID != profileID {
		respondError(w, http.StatusForbidden, "profile mismatch")
		return false
	}
	return true
}
