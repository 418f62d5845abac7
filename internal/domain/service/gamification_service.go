package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// Toggle actions.
const (
	ActionMarked   = "marked"
	ActionUnmarked = "unmarked"
)

// ToggleResult is the full side-effect summary of one habit toggle.
type ToggleResult struct {
	Habit      *entity.Habit
	Action     string
	FreezeUsed bool
	// XPChange is the sum of all XP deltas applied by this invocation.
	XPChange int
	// XP, Level and LeveledUp reflect the profile state after the last award.
	XP        int
	Level     int
	LeveledUp bool
}

// GamificationService orchestrates streaks, freezes, XP and the app streak.
type GamificationService interface {
	// ToggleHabit marks the habit complete for today, or undoes today's
	// completion if it is already marked. Returns ErrHabitNotFound for an
	// unknown habit.
	ToggleHabit(ctx context.Context, habitID uuid.UUID) (*ToggleResult, error)
}
