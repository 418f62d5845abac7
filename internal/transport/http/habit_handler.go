package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// HabitHandler handles habit-related HTTP requests
type HabitHandler struct {
	gamification service.GamificationService
	analytics    service.AnalyticsService
	habits       service.HabitService
	validate     *validator.Validate
	logger       *zap.SugaredLogger
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(
	gamification service.GamificationService,
	analytics service.AnalyticsService,
	habits service.HabitService,
	logger *zap.SugaredLogger,
) *HabitHandler {
	return &HabitHandler{
		gamification: gamification,
		analytics:    analytics,
		habits:       habits,
		validate:     validator.New(),
		logger:       logger,
	}
}

// toggleResponse is the toggle endpoint envelope: the updated habit plus the
// flat side-effect summary fields.
type toggleResponse struct {
	Success    bool          `json:"success"`
	Data       *entity.Habit `json:"data"`
	Action     string        `json:"action"`
	FreezeUsed bool          `json:"freeze_used"`
	XPChange   int           `json:"xp_change"`
	XP         int           `json:"xp"`
	Level      int           `json:"level"`
	LeveledUp  bool          `json:"leveled_up"`
}

// ToggleHabit toggles today's completion for a habit
// @Summary Toggle habit completion
// @Description Mark a habit complete for today, or undo today's completion
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} toggleResponse
// @Failure 400 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /habits/{id}/toggle [put]
func (h *HabitHandler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid habit id")
		return
	}

	result, err := h.gamification.ToggleHabit(r.Context(), habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			respondError(w, http.StatusNotFound, "habit not found")
			return
		}
		h.logger.Errorw("habit toggle failed", "habit_id", habitID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to toggle habit")
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{
		Success:    true,
		Data:       result.Habit,
		Action:     result.Action,
		FreezeUsed: result.FreezeUsed,
		XPChange:   result.XPChange,
		XP:         result.XP,
		Level:      result.Level,
		LeveledUp:  result.LeveledUp,
	})
}

// GetAnalytics returns the four derived habit views for a profile
// @Summary Get habit analytics
// @Description Weekly completions, monthly activity, category breakdown and XP timeline
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Profile ID"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Router /habits/analytics/{profileId} [get]
func (h *HabitHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("profileId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	if !authorizeProfile(w, r, profileID) {
		return
	}

	analytics, err := h.analytics.GetAnalytics(r.Context(), profileID)
	if err != nil {
		h.logger.Errorw("analytics query failed", "profile_id", profileID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to load analytics")
		return
	}

	respondSuccess(w, http.StatusOK, analytics)
}

// ListHabits returns all habits for a profile
// @Summary List habits
// @Description All habits with is_completed_today computed against today
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Profile ID"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Router /habits/{profileId} [get]
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("profileId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	if !authorizeProfile(w, r, profileID) {
		return
	}

	habits, err := h.habits.ListHabits(r.Context(), profileID)
	if err != nil {
		h.logger.Errorw("habit list failed", "profile_id", profileID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to list habits")
		return
	}

	respondSuccess(w, http.StatusOK, habits)
}

type createHabitRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	Title     string `json:"title" validate:"required,max=120"`
	Category  string `json:"category" validate:"required,max=60"`
}

// CreateHabit creates a new habit
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /habits [post]
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	if !authorizeProfile(w, r, profileID) {
		return
	}

	habit, err := h.habits.CreateHabit(r.Context(), profileID, req.Title, req.Category)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Errorw("habit create failed", "profile_id", profileID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to create habit")
		return
	}

	respondSuccess(w, http.StatusCreated, habit)
}

// DeleteHabit deletes a habit
// @Summary Delete a habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid habit id")
		return
	}

	if err := h.habits.DeleteHabit(r.Context(), habitID); err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			respondError(w, http.StatusNotFound, "habit not found")
			return
		}
		h.logger.Errorw("habit delete failed", "habit_id", habitID, "error", err)
		respondError(w, http.StatusBadRequest, "failed to delete habit")
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
