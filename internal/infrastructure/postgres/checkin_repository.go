package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
)

type dailyCheckinRepository struct {
	pool *pgxpool.Pool
}

// NewDailyCheckinRepository creates a new PostgreSQL daily checkin repository
func NewDailyCheckinRepository(pool *pgxpool.Pool) repository.DailyCheckinRepository {
	return &dailyCheckinRepository{pool: pool}
}

func (r *dailyCheckinRepository) Upsert(ctx context.Context, checkin *entity.DailyCheckin) error {
	query := `
		INSERT INTO daily_checkins (
			id, profile_id, checkin_date, habits_completed, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (profile_id, checkin_date) DO UPDATE SET
			habits_completed = EXCLUDED.habits_completed,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		checkin.ID, checkin.ProfileID, checkin.CheckinDate,
		checkin.HabitsCompleted, checkin.CreatedAt, checkin.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert daily checkin: %w", err)
	}

	return nil
}

func (r *dailyCheckinRepository) GetByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) ([]*entity.DailyCheckin, error) {
	query := `
		SELECT
			id, profile_id, checkin_date, habits_completed, created_at, updated_at
		FROM daily_checkins
		WHERE profile_id = $1 AND checkin_date >= $2 AND checkin_date <= $3
		ORDER BY checkin_date
	`

	rows, err := r.pool.Query(ctx, query, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily checkins: %w", err)
	}
	defer rows.Close()

	var checkins []*entity.DailyCheckin
	for rows.Next() {
		checkin := &entity.DailyCheckin{}
		err := rows.Scan(
			&checkin.ID, &checkin.ProfileID, &checkin.CheckinDate,
			&checkin.HabitsCompleted, &checkin.CreatedAt, &checkin.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily checkin: %w", err)
		}
		checkins = append(checkins, checkin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily checkins: %w", err)
	}

	return checkins, nil
}
