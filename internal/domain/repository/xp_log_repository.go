package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// XPLogRepository manages the append-only XP ledger.
type XPLogRepository interface {
	Insert(ctx context.Context, entry *entity.XPLogEntry) error
	// SumPositiveByDateRange returns per-day sums of positive XP deltas for a
	// profile over [from, to] inclusive.
	SumPositiveByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) (map[string]int, error)
}
