package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	habits service.HabitService
	logger *zap.SugaredLogger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(habits service.HabitService, logger *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{habits: habits, logger: logger}
}

// GetProfile returns a profile's gamification state
// @Summary Get profile
// @Description XP, level, app streak and freeze balance
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	if !authorizeProfile(w, r, profileID) {
		return
	}

	profile, err := h.habits.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Errorw("profile fetch failed", "profile_id", profileID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to load profile")
		return
	}

	respondSuccess(w, http.StatusOK, profile)
}
