package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// HabitService covers the thin habit/profile reads and writes around the
// gamification core.
type HabitService interface {
	CreateHabit(ctx context.Context, profileID uuid.UUID, title, category string) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID uuid.UUID) error
	// ListHabits returns the profile's habits with IsCompletedToday computed
	// against the current date.
	ListHabits(ctx context.Context, profileID uuid.UUID) ([]*entity.Habit, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
}
