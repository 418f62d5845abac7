package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT
			id, xp, level, app_streak, longest_app_streak, last_active_date,
			streak_freezes_available, last_freeze_granted_week, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	profile := &entity.Profile{}
	err := r.pool.QueryRow(ctx, query, profileID).Scan(
		&profile.ID, &profile.XP, &profile.Level, &profile.AppStreak,
		&profile.LongestAppStreak, &profile.LastActiveDate,
		&profile.StreakFreezesAvailable, &profile.LastFreezeGrantedWeek,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles SET
			xp = $1,
			level = $2,
			app_streak = $3,
			longest_app_streak = $4,
			last_active_date = $5,
			streak_freezes_available = $6,
			last_freeze_granted_week = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.pool.Exec(ctx, query,
		profile.XP, profile.Level, profile.AppStreak, profile.LongestAppStreak,
		profile.LastActiveDate, profile.StreakFreezesAvailable,
		profile.LastFreezeGrantedWeek, profile.UpdatedAt, profile.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT id FROM profiles ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan profile id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return ids, nil
}
