package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

type analyticsFixture struct {
	habits   *fakeHabitRepo
	logs     *fakeHabitLogRepo
	checkins *fakeCheckinRepo
	xpLog    *fakeXPLogRepo
	cache    *fakeCache
	clk      *clock.Fixed
	svc      service.AnalyticsService
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	clk, err := clock.NewFixed("2026-03-12")
	require.NoError(t, err)

	fx := &analyticsFixture{
		habits:   newFakeHabitRepo(),
		logs:     newFakeHabitLogRepo(),
		checkins: newFakeCheckinRepo(),
		xpLog:    newFakeXPLogRepo(),
		cache:    newFakeCache(),
		clk:      clk,
	}
	fx.svc = NewAnalyticsService(fx.habits, fx.logs, fx.checkins, fx.xpLog, clk, fx.cache, zap.NewNop().Sugar())
	return fx
}

func TestGetAnalytics_ZeroFilledSeries(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	require.Len(t, analytics.WeeklyCompletions, 7)
	require.Len(t, analytics.MonthlyActivity, 30)
	require.Len(t, analytics.XPTimeline, 7)
	assert.Empty(t, analytics.CategoryBreakdown)

	// Oldest to newest, ending today.
	assert.Equal(t, fx.clk.DaysAgo(6), analytics.WeeklyCompletions[0].Date)
	assert.Equal(t, fx.clk.Today(), analytics.WeeklyCompletions[6].Date)
	assert.Equal(t, fx.clk.DaysAgo(29), analytics.MonthlyActivity[0].Date)

	for _, point := range analytics.WeeklyCompletions {
		assert.Zero(t, point.Count)
		assert.Equal(t, fx.clk.WeekdayName(point.Date), point.Label)
	}
}

func TestGetAnalytics_WeeklyFromCheckins(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	fx.checkins.Upsert(context.Background(), &entity.DailyCheckin{
		ID: uuid.New(), ProfileID: profileID,
		CheckinDate: fx.clk.Today(), HabitsCompleted: 3,
	})
	fx.checkins.Upsert(context.Background(), &entity.DailyCheckin{
		ID: uuid.New(), ProfileID: profileID,
		CheckinDate: fx.clk.DaysAgo(2), HabitsCompleted: 1,
	})
	// Outside the 7-day window.
	fx.checkins.Upsert(context.Background(), &entity.DailyCheckin{
		ID: uuid.New(), ProfileID: profileID,
		CheckinDate: fx.clk.DaysAgo(9), HabitsCompleted: 5,
	})

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	weekly := analytics.WeeklyCompletions
	assert.Equal(t, 3, weekly[6].Count)
	assert.Equal(t, 1, weekly[4].Count)
	assert.Equal(t, 0, weekly[0].Count)
}

func TestGetAnalytics_MonthlyFromHabitLogs(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()
	habitA := uuid.New()
	habitB := uuid.New()

	for _, log := range []*entity.HabitLog{
		{ID: uuid.New(), HabitID: habitA, ProfileID: profileID, CompletedDate: fx.clk.Today()},
		{ID: uuid.New(), HabitID: habitB, ProfileID: profileID, CompletedDate: fx.clk.Today()},
		{ID: uuid.New(), HabitID: habitA, ProfileID: profileID, CompletedDate: fx.clk.DaysAgo(10)},
	} {
		require.NoError(t, fx.logs.Insert(context.Background(), log))
	}

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	monthly := analytics.MonthlyActivity
	assert.Equal(t, 2, monthly[29].Count)
	assert.Equal(t, 1, monthly[19].Count)
}

func TestGetAnalytics_CategoryBreakdownSorted(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	for _, h := range []*entity.Habit{
		{ID: uuid.New(), ProfileID: profileID, Category: "learning", TotalCompletions: 2},
		{ID: uuid.New(), ProfileID: profileID, Category: "fitness", TotalCompletions: 5},
		{ID: uuid.New(), ProfileID: profileID, Category: "fitness", TotalCompletions: 3},
		{ID: uuid.New(), ProfileID: profileID, Category: "art", TotalCompletions: 0},
	} {
		require.NoError(t, fx.habits.Create(context.Background(), h))
	}

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	require.Len(t, analytics.CategoryBreakdown, 3)
	assert.Equal(t, service.CategoryTotal{Category: "art", Total: 0}, analytics.CategoryBreakdown[0])
	assert.Equal(t, service.CategoryTotal{Category: "fitness", Total: 8}, analytics.CategoryBreakdown[1])
	assert.Equal(t, service.CategoryTotal{Category: "learning", Total: 2}, analytics.CategoryBreakdown[2])
}

func TestGetAnalytics_XPTimelinePositiveOnly(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	for _, e := range []*entity.XPLogEntry{
		{ID: uuid.New(), ProfileID: profileID, Amount: 10, Reason: entity.ReasonHabitComplete, ReferenceDate: fx.clk.Today()},
		{ID: uuid.New(), ProfileID: profileID, Amount: -10, Reason: entity.ReasonHabitUndo, ReferenceDate: fx.clk.Today()},
		{ID: uuid.New(), ProfileID: profileID, Amount: 5, Reason: entity.ReasonStreakBonus, ReferenceDate: fx.clk.DaysAgo(2)},
	} {
		require.NoError(t, fx.xpLog.Insert(context.Background(), e))
	}

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	timeline := analytics.XPTimeline
	assert.Equal(t, 10, timeline[6].Count)
	assert.Equal(t, 5, timeline[4].Count)
}

func TestGetAnalytics_UsesCache(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	cached := &service.Analytics{CategoryBreakdown: []service.CategoryTotal{{Category: "fitness", Total: 9}}}
	fx.cache.Set(context.Background(), profileID, cached)
	fx.cache.setCount = 0

	analytics, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	assert.Same(t, cached, analytics)
	assert.Zero(t, fx.cache.setCount)
}

func TestGetAnalytics_PopulatesCacheOnMiss(t *testing.T) {
	fx := newAnalyticsFixture(t)
	profileID := uuid.New()

	_, err := fx.svc.GetAnalytics(context.Background(), profileID)
	require.NoError(t, err)

	assert.Equal(t, 1, fx.cache.setCount)
	_, ok := fx.cache.Get(context.Background(), profileID)
	assert.True(t, ok)
}
