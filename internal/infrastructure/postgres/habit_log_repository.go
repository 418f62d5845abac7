package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint conflict.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type habitLogRepository struct {
	pool *pgxpool.Pool
}

// NewHabitLogRepository creates a new PostgreSQL habit log repository
func NewHabitLogRepository(pool *pgxpool.Pool) repository.HabitLogRepository {
	return &habitLogRepository{pool: pool}
}

func (r *habitLogRepository) Insert(ctx context.Context, log *entity.HabitLog) error {
	query := `
		INSERT INTO habit_logs (
			id, habit_id, profile_id, completed_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.HabitID, log.ProfileID, log.CompletedDate, log.CreatedAt,
	)

	if err != nil {
		// A row for (habit_id, completed_date) already exists: treat the
		// completion as already applied.
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to insert habit log: %w", err)
	}

	return nil
}

func (r *habitLogRepository) DeleteByDate(ctx context.Context, habitID uuid.UUID, date string) error {
	query := `DELETE FROM habit_logs WHERE habit_id = $1 AND completed_date = $2`

	if _, err := r.pool.Exec(ctx, query, habitID, date); err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}

	return nil
}

func (r *habitLogRepository) ExistsForDate(ctx context.Context, habitID uuid.UUID, date string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM habit_logs
			WHERE habit_id = $1 AND completed_date = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, habitID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check habit log existence: %w", err)
	}

	return exists, nil
}

func (r *habitLogRepository) CountByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) (map[string]int, error) {
	query := `
		SELECT completed_date, COUNT(*)
		FROM habit_logs
		WHERE profile_id = $1 AND completed_date >= $2 AND completed_date <= $3
		GROUP BY completed_date
	`

	rows, err := r.pool.Query(ctx, query, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count habit logs: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan habit log count: %w", err)
		}
		counts[date] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit log counts: %w", err)
	}

	return counts, nil
}
