package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitLog is one completion record per habit per date. At most one row
// exists per (habit_id, completed_date); duplicate inserts are absorbed.
type HabitLog struct {
	ID            uuid.UUID `json:"id"`
	HabitID       uuid.UUID `json:"habit_id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	CompletedDate string    `json:"completed_date"`
	CreatedAt     time.Time `json:"created_at"`
}
