package entity

import (
	"time"

	"github.com/google/uuid"
)

// Habit represents a single trackable habit.
type Habit struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`

	Title    string `json:"title"`
	Category string `json:"category"`

	// Streak state. LongestStreak >= CurrentStreak always.
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	LastCompletedDate *string `json:"last_completed_date"`
	TotalCompletions  int     `json:"total_completions"`

	// Derived: LastCompletedDate == today. Recomputed on read and on toggle.
	IsCompletedToday bool `json:"is_completed_today"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompletedOn reports whether the habit's last completion falls on the given date.
func (h *Habit) CompletedOn(date string) bool {
	return h.LastCompletedDate != nil && *h.LastCompletedDate == date
}
