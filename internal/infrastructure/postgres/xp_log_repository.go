package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
)

type xpLogRepository struct {
	pool *pgxpool.Pool
}

// NewXPLogRepository creates a new PostgreSQL XP ledger repository
func NewXPLogRepository(pool *pgxpool.Pool) repository.XPLogRepository {
	return &xpLogRepository{pool: pool}
}

func (r *xpLogRepository) Insert(ctx context.Context, entry *entity.XPLogEntry) error {
	query := `
		INSERT INTO xp_log (
			id, profile_id, amount, reason, reference_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.ProfileID, entry.Amount, entry.Reason,
		entry.ReferenceDate, entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert xp log entry: %w", err)
	}

	return nil
}

func (r *xpLogRepository) SumPositiveByDateRange(ctx context.Context, profileID uuid.UUID, from, to string) (map[string]int, error) {
	query := `
		SELECT reference_date, SUM(amount)
		FROM xp_log
		WHERE profile_id = $1 AND amount > 0 AND reference_date >= $2 AND reference_date <= $3
		GROUP BY reference_date
	`

	rows, err := r.pool.Query(ctx, query, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum xp log: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]int)
	for rows.Next() {
		var date string
		var sum int
		if err := rows.Scan(&date, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan xp sum: %w", err)
		}
		sums[date] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate xp sums: %w", err)
	}

	return sums, nil
}
