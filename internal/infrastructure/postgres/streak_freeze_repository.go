package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
)

type streakFreezeRepository struct {
	pool *pgxpool.Pool
}

// NewStreakFreezeRepository creates a new PostgreSQL streak freeze repository
func NewStreakFreezeRepository(pool *pgxpool.Pool) repository.StreakFreezeRepository {
	return &streakFreezeRepository{pool: pool}
}

func (r *streakFreezeRepository) Insert(ctx context.Context, freeze *entity.StreakFreeze) error {
	query := `
		INSERT INTO streak_freezes (
			id, profile_id, habit_id, freeze_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.pool.Exec(ctx, query,
		freeze.ID, freeze.ProfileID, freeze.HabitID, freeze.FreezeDate, freeze.CreatedAt,
	)

	if err != nil {
		// One consumption per (profile_id, freeze_date); a duplicate means a
		// concurrent toggle already used today's freeze.
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to insert streak freeze: %w", err)
	}

	return nil
}

func (r *streakFreezeRepository) ExistsForDate(ctx context.Context, profileID uuid.UUID, date string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM streak_freezes
			WHERE profile_id = $1 AND freeze_date = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, profileID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check streak freeze existence: %w", err)
	}

	return exists, nil
}
