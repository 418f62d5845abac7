package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// StreakFreezeRepository manages freeze consumption records.
type StreakFreezeRepository interface {
	// Insert records a consumption. A duplicate (profile_id, freeze_date) is
	// treated as already applied and returns nil.
	Insert(ctx context.Context, freeze *entity.StreakFreeze) error
	ExistsForDate(ctx context.Context, profileID uuid.UUID, date string) (bool, error)
}
