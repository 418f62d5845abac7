package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// HabitRepository manages habit rows.
type HabitRepository interface {
	GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)
	GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.Habit, error)
	Create(ctx context.Context, habit *entity.Habit) error
	Update(ctx context.Context, habit *entity.Habit) error
	Delete(ctx context.Context, habitID uuid.UUID) error
}
