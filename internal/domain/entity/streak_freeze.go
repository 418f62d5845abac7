package entity

import (
	"time"

	"github.com/google/uuid"
)

// StreakFreeze records one freeze consumption. At most one row exists per
// (profile_id, freeze_date) no matter how many habits are toggled that day.
// HabitID is the habit whose completion triggered the use.
type StreakFreeze struct {
	ID         uuid.UUID `json:"id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	HabitID    uuid.UUID `json:"habit_id"`
	FreezeDate string    `json:"freeze_date"`
	CreatedAt  time.Time `json:"created_at"`
}
