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

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (
			id, profile_id, title, category,
			current_streak, longest_streak, last_completed_date, total_completions,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		habit.ID, habit.ProfileID, habit.Title, habit.Category,
		habit.CurrentStreak, habit.LongestStreak, habit.LastCompletedDate, habit.TotalCompletions,
		habit.CreatedAt, habit.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `
		SELECT
			id, profile_id, title, category,
			current_streak, longest_streak, last_completed_date, total_completions,
			created_at, updated_at
		FROM habits
		WHERE id = $1
	`

	habit := &entity.Habit{}
	err := r.pool.QueryRow(ctx, query, habitID).Scan(
		&habit.ID, &habit.ProfileID, &habit.Title, &habit.Category,
		&habit.CurrentStreak, &habit.LongestStreak, &habit.LastCompletedDate, &habit.TotalCompletions,
		&habit.CreatedAt, &habit.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.Habit, error) {
	query := `
		SELECT
			id, profile_id, title, category,
			current_streak, longest_streak, last_completed_date, total_completions,
			created_at, updated_at
		FROM habits
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	defer rows.Close()

	var habits []*entity.Habit
	for rows.Next() {
		habit := &entity.Habit{}
		err := rows.Scan(
			&habit.ID, &habit.ProfileID, &habit.Title, &habit.Category,
			&habit.CurrentStreak, &habit.LongestStreak, &habit.LastCompletedDate, &habit.TotalCompletions,
			&habit.CreatedAt, &habit.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `
		UPDATE habits SET
			title = $1,
			category = $2,
			current_streak = $3,
			longest_streak = $4,
			last_completed_date = $5,
			total_completions = $6,
			updated_at = $7
		WHERE id = $8
	`

	result, err := r.pool.Exec(ctx, query,
		habit.Title, habit.Category,
		habit.CurrentStreak, habit.LongestStreak, habit.LastCompletedDate, habit.TotalCompletions,
		habit.UpdatedAt, habit.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(ctx context.Context, habitID uuid.UUID) error {
	query := `DELETE FROM habits WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, habitID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}
