package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

const (
	weeklyWindowDays  = 7
	monthlyWindowDays = 30
)

type analyticsService struct {
	habits   repository.HabitRepository
	logs     repository.HabitLogRepository
	checkins repository.DailyCheckinRepository
	xpLog    repository.XPLogRepository

	clk    clock.Clock
	cache  AnalyticsCache // optional
	logger *zap.SugaredLogger
}

// NewAnalyticsService creates the read-only analytics projections. cache may be nil.
func NewAnalyticsService(
	habits repository.HabitRepository,
	logs repository.HabitLogRepository,
	checkins repository.DailyCheckinRepository,
	xpLog repository.XPLogRepository,
	clk clock.Clock,
	cache AnalyticsCache,
	logger *zap.SugaredLogger,
) service.AnalyticsService {
	return &analyticsService{
		habits:   habits,
		logs:     logs,
		checkins: checkins,
		xpLog:    xpLog,
		clk:      clk,
		cache:    cache,
		logger:   logger,
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, profileID uuid.UUID) (*service.Analytics, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, profileID); ok {
			return cached, nil
		}
	}

	weekly, err := s.weeklyCompletions(ctx, profileID)
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthlyActivity(ctx, profileID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryBreakdown(ctx, profileID)
	if err != nil {
		return nil, err
	}

	xpTimeline, err := s.xpTimeline(ctx, profileID)
	if err != nil {
		return nil, err
	}

	analytics := &service.Analytics{
		WeeklyCompletions: weekly,
		MonthlyActivity:   monthly,
		CategoryBreakdown: categories,
		XPTimeline:        xpTimeline,
	}

	if s.cache != nil {
		s.cache.Set(ctx, profileID, analytics)
	}

	return analytics, nil
}

// weeklyCompletions returns daily habit-completion counts for the last 7 days
// from the check-in rows, zero-filled.
func (s *analyticsService) weeklyCompletions(ctx context.Context, profileID uuid.UUID) ([]service.DayCount, error) {
	from := s.clk.DaysAgo(weeklyWindowDays - 1)
	to := s.clk.Today()

	rows, err := s.checkins.GetByDateRange(ctx, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkins: %w", err)
	}

	byDate := make(map[string]int, len(rows))
	for _, c := range rows {
		byDate[c.CheckinDate] = c.HabitsCompleted
	}

	return s.fillSeries(byDate, weeklyWindowDays), nil
}

// monthlyActivity returns daily habit-log counts for the last 30 days, zero-filled.
func (s *analyticsService) monthlyActivity(ctx context.Context, profileID uuid.UUID) ([]service.DayCount, error) {
	from := s.clk.DaysAgo(monthlyWindowDays - 1)
	to := s.clk.Today()

	counts, err := s.logs.CountByDateRange(ctx, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count habit logs: %w", err)
	}

	return s.fillSeries(counts, monthlyWindowDays), nil
}

// categoryBreakdown sums all-time completions per habit category.
func (s *analyticsService) categoryBreakdown(ctx context.Context, profileID uuid.UUID) ([]service.CategoryTotal, error) {
	habits, err := s.habits.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	totals := make(map[string]int)
	for _, h := range habits {
		totals[h.Category] += h.TotalCompletions
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	breakdown := make([]service.CategoryTotal, 0, len(categories))
	for _, c := range categories {
		breakdown = append(breakdown, service.CategoryTotal{Category: c, Total: totals[c]})
	}

	return breakdown, nil
}

// xpTimeline returns daily positive-XP sums for the last 7 days, zero-filled.
func (s *analyticsService) xpTimeline(ctx context.Context, profileID uuid.UUID) ([]service.DayCount, error) {
	from := s.clk.DaysAgo(weeklyWindowDays - 1)
	to := s.clk.Today()

	sums, err := s.xpLog.SumPositiveByDateRange(ctx, profileID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum xp log: %w", err)
	}

	return s.fillSeries(sums, weeklyWindowDays), nil
}

// fillSeries builds an oldest-to-newest daily series of the given window
// length, filling days absent from byDate with zero.
func (s *analyticsService) fillSeries(byDate map[string]int, days int) []service.DayCount {
	series := make([]service.DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := s.clk.DaysAgo(i)
		series = append(series, service.DayCount{
			Date:  date,
			Label: s.clk.WeekdayName(date),
			Count: byDate[date],
		})
	}
	return series
}
