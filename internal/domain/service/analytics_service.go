package service

import (
	"context"

	"github.com/google/uuid"
)

// DayCount is one point of a daily time series. Missing days are zero-filled
// so charts never show gaps.
type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryTotal is the all-time completion total for one habit category.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// Analytics bundles the four derived habit views.
type Analytics struct {
	WeeklyCompletions []DayCount      `json:"weeklyCompletions"`
	MonthlyActivity   []DayCount      `json:"monthlyActivity"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	XPTimeline        []DayCount      `json:"xpTimeline"`
}

// AnalyticsService produces read-only projections over the habit stores.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, profileID uuid.UUID) (*Analytics, error)
}
