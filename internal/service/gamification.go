package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

const (
	xpBaseCompletion = 10
	xpUndoPenalty    = -10
	xpStreakBonus    = 5
	xpAllHabitsBonus = 25

	// Streak bonus applies from this streak length onward.
	streakBonusThreshold = 3

	xpPerLevel = 100
)

// streakMilestones are the streak lengths that emit a notification event.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

// EventPublisher delivers gamification events to the notification pipeline.
// Publish failures never fail a toggle; they are logged and dropped.
type EventPublisher interface {
	PublishLevelUp(ctx context.Context, profileID uuid.UUID, level int) error
	PublishStreakMilestone(ctx context.Context, profileID, habitID uuid.UUID, streak int) error
	PublishFreezeUsed(ctx context.Context, profileID, habitID uuid.UUID, date string) error
}

// AnalyticsCache caches the analytics payload per profile. All methods are
// best-effort; implementations swallow and log their own errors.
type AnalyticsCache interface {
	Get(ctx context.Context, profileID uuid.UUID) (*service.Analytics, bool)
	Set(ctx context.Context, profileID uuid.UUID, analytics *service.Analytics)
	Invalidate(ctx context.Context, profileID uuid.UUID)
}

type gamificationService struct {
	profiles repository.ProfileRepository
	habits   repository.HabitRepository
	logs     repository.HabitLogRepository
	checkins repository.DailyCheckinRepository
	xpLog    repository.XPLogRepository
	freezes  repository.StreakFreezeRepository

	clk    clock.Clock
	events EventPublisher // optional
	cache  AnalyticsCache // optional
	logger *zap.SugaredLogger

	// Toggles on the same habit are serialized; the store writes below have
	// no wrapping transaction, so interleaving would double-apply increments.
	locks *lockTable
}

// NewGamificationService creates the toggle engine. events and cache may be nil.
func NewGamificationService(
	profiles repository.ProfileRepository,
	habits repository.HabitRepository,
	logs repository.HabitLogRepository,
	checkins repository.DailyCheckinRepository,
	xpLog repository.XPLogRepository,
	freezes repository.StreakFreezeRepository,
	clk clock.Clock,
	events EventPublisher,
	cache AnalyticsCache,
	logger *zap.SugaredLogger,
) service.GamificationService {
	return &gamificationService{
		profiles: profiles,
		habits:   habits,
		logs:     logs,
		checkins: checkins,
		xpLog:    xpLog,
		freezes:  freezes,
		clk:      clk,
		events:   events,
		cache:    cache,
		logger:   logger,
		locks:    newLockTable(),
	}
}

func (s *gamificationService) ToggleHabit(ctx context.Context, habitID uuid.UUID) (*service.ToggleResult, error) {
	unlock := s.locks.lock(habitID)
	defer unlock()

	habit, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	today := s.clk.Today()
	yesterday := s.clk.Yesterday()

	var result *service.ToggleResult
	if habit.CompletedOn(today) {
		result, err = s.undo(ctx, habit, today, yesterday)
	} else {
		result, err = s.markComplete(ctx, habit, today, yesterday)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, habit.ProfileID)
	}

	return result, nil
}

// undo reverses today's completion. The rollback is deliberately flat: the
// completion marker moves back exactly one day and a fixed 10 XP is deducted,
// regardless of what the matching completion awarded.
func (s *gamificationService) undo(ctx context.Context, habit *entity.Habit, today, yesterday string) (*service.ToggleResult, error) {
	if err := s.logs.DeleteByDate(ctx, habit.ID, today); err != nil {
		return nil, fmt.Errorf("failed to delete habit log: %w", err)
	}

	if habit.CurrentStreak > 0 {
		habit.CurrentStreak--
	}
	if habit.TotalCompletions > 0 {
		habit.TotalCompletions--
	}
	habit.LastCompletedDate = &yesterday
	habit.IsCompletedToday = false
	habit.UpdatedAt = s.clk.Now()

	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	award, err := s.awardXP(ctx, habit.ProfileID, xpUndoPenalty, entity.ReasonHabitUndo, today)
	if err != nil {
		return nil, err
	}

	return &service.ToggleResult{
		Habit:      habit,
		Action:     service.ActionUnmarked,
		FreezeUsed: false,
		XPChange:   xpUndoPenalty,
		XP:         award.xp,
		Level:      award.level,
		LeveledUp:  award.leveledUp,
	}, nil
}

func (s *gamificationService) markComplete(ctx context.Context, habit *entity.Habit, today, yesterday string) (*service.ToggleResult, error) {
	// Idempotent: a leftover row from a double-submission is not an error.
	err := s.logs.Insert(ctx, &entity.HabitLog{
		ID:            uuid.New(),
		HabitID:       habit.ID,
		ProfileID:     habit.ProfileID,
		CompletedDate: today,
		CreatedAt:     s.clk.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert habit log: %w", err)
	}

	// A freeze is only consulted when the streak would otherwise break.
	completedYesterday := habit.CompletedOn(yesterday)
	freezeUsed := false
	if !completedYesterday {
		freezeUsed, err = s.tryUseFreeze(ctx, habit, today)
		if err != nil {
			return nil, err
		}
	}

	newStreak := 1
	if completedYesterday || freezeUsed {
		newStreak = habit.CurrentStreak + 1
	}

	habit.CurrentStreak = newStreak
	if newStreak > habit.LongestStreak {
		habit.LongestStreak = newStreak
	}
	habit.LastCompletedDate = &today
	habit.TotalCompletions++
	habit.IsCompletedToday = true
	habit.UpdatedAt = s.clk.Now()

	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	// XP awards in fixed order: base, streak bonus, all-habits bonus.
	xpChange := xpBaseCompletion
	award, err := s.awardXP(ctx, habit.ProfileID, xpBaseCompletion, entity.ReasonHabitComplete, today)
	if err != nil {
		return nil, err
	}
	leveledUpAny := award.leveledUp

	if newStreak >= streakBonusThreshold {
		award, err = s.awardXP(ctx, habit.ProfileID, xpStreakBonus, entity.ReasonStreakBonus, today)
		if err != nil {
			return nil, err
		}
		xpChange += xpStreakBonus
		leveledUpAny = leveledUpAny || award.leveledUp
	}

	all, err := s.habits.GetByProfileID(ctx, habit.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	completedToday := 0
	for _, h := range all {
		if h.CompletedOn(today) {
			completedToday++
		}
	}

	if len(all) > 0 && completedToday == len(all) {
		award, err = s.awardXP(ctx, habit.ProfileID, xpAllHabitsBonus, entity.ReasonAllHabitsComplete, today)
		if err != nil {
			return nil, err
		}
		xpChange += xpAllHabitsBonus
		leveledUpAny = leveledUpAny || award.leveledUp
	}

	if err := s.updateAppStreak(ctx, habit.ProfileID, today, yesterday, completedToday); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, habit, today, newStreak, freezeUsed, leveledUpAny, award.level)

	return &service.ToggleResult{
		Habit:      habit,
		Action:     service.ActionMarked,
		FreezeUsed: freezeUsed,
		XPChange:   xpChange,
		XP:         award.xp,
		Level:      award.level,
		LeveledUp:  award.leveledUp,
	}, nil
}

// tryUseFreeze consumes a freeze if the profile has one available and none
// was consumed today. One freeze use per profile per day across all habits.
func (s *gamificationService) tryUseFreeze(ctx context.Context, habit *entity.Habit, today string) (bool, error) {
	profile, err := s.profiles.GetByID(ctx, habit.ProfileID)
	if err != nil {
		return false, err
	}

	if profile.StreakFreezesAvailable <= 0 {
		return false, nil
	}

	used, err := s.freezes.ExistsForDate(ctx, profile.ID, today)
	if err != nil {
		return false, fmt.Errorf("failed to check freeze usage: %w", err)
	}
	if used {
		return false, nil
	}

	err = s.freezes.Insert(ctx, &entity.StreakFreeze{
		ID:         uuid.New(),
		ProfileID:  profile.ID,
		HabitID:    habit.ID,
		FreezeDate: today,
		CreatedAt:  s.clk.Now(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to record freeze: %w", err)
	}

	profile.StreakFreezesAvailable--
	profile.UpdatedAt = s.clk.Now()
	if err := s.profiles.Update(ctx, profile); err != nil {
		return false, fmt.Errorf("failed to update freeze balance: %w", err)
	}

	return true, nil
}

// updateAppStreak upserts today's check-in with the recomputed completion
// count and advances the profile-wide daily streak.
func (s *gamificationService) updateAppStreak(ctx context.Context, profileID uuid.UUID, today, yesterday string, completedToday int) error {
	now := s.clk.Now()
	err := s.checkins.Upsert(ctx, &entity.DailyCheckin{
		ID:              uuid.New(),
		ProfileID:       profileID,
		CheckinDate:     today,
		HabitsCompleted: completedToday,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert daily checkin: %w", err)
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	switch {
	case profile.LastActiveDate != nil && *profile.LastActiveDate == today:
		// Already counted today.
	case profile.LastActiveDate != nil && *profile.LastActiveDate == yesterday:
		profile.AppStreak++
	default:
		profile.AppStreak = 1
	}
	if profile.AppStreak > profile.LongestAppStreak {
		profile.LongestAppStreak = profile.AppStreak
	}
	profile.LastActiveDate = &today
	profile.UpdatedAt = now

	if err := s.profiles.Update(ctx, profile); err != nil {
		return fmt.Errorf("failed to update app streak: %w", err)
	}

	return nil
}

type awardResult struct {
	xp        int
	level     int
	leveledUp bool
}

// awardXP appends a ledger entry and updates the profile's running XP total
// and level. XP floors at zero; level = floor(xp/100) + 1.
func (s *gamificationService) awardXP(ctx context.Context, profileID uuid.UUID, amount int, reason entity.XPReason, date string) (awardResult, error) {
	err := s.xpLog.Insert(ctx, &entity.XPLogEntry{
		ID:            uuid.New(),
		ProfileID:     profileID,
		Amount:        amount,
		Reason:        reason,
		ReferenceDate: date,
		CreatedAt:     s.clk.Now(),
	})
	if err != nil {
		return awardResult{}, fmt.Errorf("failed to insert xp log entry: %w", err)
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return awardResult{}, err
	}

	newXP := profile.XP + amount
	if newXP < 0 {
		newXP = 0
	}
	newLevel := newXP/xpPerLevel + 1
	leveledUp := newLevel > profile.Level

	profile.XP = newXP
	profile.Level = newLevel
	profile.UpdatedAt = s.clk.Now()

	if err := s.profiles.Update(ctx, profile); err != nil {
		return awardResult{}, fmt.Errorf("failed to update profile xp: %w", err)
	}

	return awardResult{xp: newXP, level: newLevel, leveledUp: leveledUp}, nil
}

func (s *gamificationService) publishEvents(ctx context.Context, habit *entity.Habit, today string, streak int, freezeUsed, leveledUp bool, level int) {
	if s.events == nil {
		return
	}

	if leveledUp {
		if err := s.events.PublishLevelUp(ctx, habit.ProfileID, level); err != nil {
			s.logger.Warnw("failed to publish level up event", "profile_id", habit.ProfileID, "error", err)
		}
	}
	if streakMilestones[streak] {
		if err := s.events.PublishStreakMilestone(ctx, habit.ProfileID, habit.ID, streak); err != nil {
			s.logger.Warnw("failed to publish streak milestone event", "habit_id", habit.ID, "error", err)
		}
	}
	if freezeUsed {
		if err := s.events.PublishFreezeUsed(ctx, habit.ProfileID, habit.ID, today); err != nil {
			s.logger.Warnw("failed to publish freeze used event", "habit_id", habit.ID, "error", err)
		}
	}
}
