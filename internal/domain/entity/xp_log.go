package entity

import (
	"time"

	"github.com/google/uuid"
)

// XPReason tags why an XP delta was applied.
type XPReason string

const (
	ReasonHabitComplete     XPReason = "habit_complete"
	ReasonHabitUndo         XPReason = "habit_undo"
	ReasonStreakBonus       XPReason = "streak_bonus"
	ReasonAllHabitsComplete XPReason = "all_habits_complete"
)

// XPLogEntry is an immutable, append-only record of an XP delta.
// The ledger is the audit trail; Profile.XP is the maintained running total.
type XPLogEntry struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	Amount        int       `json:"amount"`
	Reason        XPReason  `json:"reason"`
	ReferenceDate string    `json:"reference_date"`
	CreatedAt     time.Time `json:"created_at"`
}
