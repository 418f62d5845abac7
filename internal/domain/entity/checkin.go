package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyCheckin records how many habits a profile completed on a given date.
// One row per (profile_id, checkin_date); the count is recomputed on every
// write, never incremented.
type DailyCheckin struct {
	ID              uuid.UUID `json:"id"`
	ProfileID       uuid.UUID `json:"profile_id"`
	CheckinDate     string    `json:"checkin_date"`
	HabitsCompleted int       `json:"habits_completed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
