package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
)

// ProfileRepository manages gamification state rows.
type ProfileRepository interface {
	GetByID(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
	// Update persists the mutable gamification fields (xp, level, app streak,
	// last active date, freeze balance and grant week).
	Update(ctx context.Context, profile *entity.Profile) error
	// ListIDs returns all profile ids, used by the weekly freeze grant sweep.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
