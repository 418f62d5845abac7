package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a user's gamification state. XP is maintained as a running
// total alongside the XP ledger for fast reads; level is derived from XP.
type Profile struct {
	ID uuid.UUID `json:"id"`

	XP    int `json:"xp"`
	Level int `json:"level"`

	// App-wide streak: consecutive days with at least one habit completed.
	AppStreak        int     `json:"app_streak"`
	LongestAppStreak int     `json:"longest_app_streak"`
	LastActiveDate   *string `json:"last_active_date"`

	// Streak freezes: 0..3 available, granted at most once per calendar week.
	StreakFreezesAvailable int     `json:"streak_freezes_available"`
	LastFreezeGrantedWeek  *string `json:"last_freeze_granted_week"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
