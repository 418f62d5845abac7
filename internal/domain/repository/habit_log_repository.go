package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// HabitLogRepository manages per-date completion records.
type HabitLogRepository interface {
	// Insert adds a completion record. A duplicate (habit_id, completed_date)
	// is treated as already applied and returns nil.
	Insert(ctx context.Context, log *entity.HabitLog) error
	DeleteByDate(ctx context.Context, habitID uuid.UUID, date string) error
	ExistsForDate(ctx context.Context, habitID uuid.UUID, date string) (bool, error)
	// CountByDateRange returns per-day completion counts for a profile over
	// [from, to] inclusive. Days with no completions are absent from the map.
	CountByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) (map[string]int, error)
}
