package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// DailyCheckinRepository manages one check-in row per profile per date.
type DailyCheckinRepository interface {
	// Upsert inserts or replaces the row for (profile_id, checkin_date).
	Upsert(ctx context.Context, checkin *entity.DailyCheckin) error
	GetByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) ([]*entity.DailyCheckin, error)
}
