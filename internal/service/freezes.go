package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// maxStreakFreezes caps the freeze balance a profile can hold.
const maxStreakFreezes = 3

type freezeService struct {
	profiles repository.ProfileRepository
	clk      clock.Clock
	logger   *zap.SugaredLogger
}

// NewFreezeService creates the weekly freeze grant service.
func NewFreezeService(profiles repository.ProfileRepository, clk clock.Clock, logger *zap.SugaredLogger) service.FreezeService {
	return &freezeService{profiles: profiles, clk: clk, logger: logger}
}

// GrantWeeklyFreezes grants one freeze per profile per calendar week, up to
// the cap. A failed profile is logged and skipped; the sweep continues.
func (s *freezeService) GrantWeeklyFreezes(ctx context.Context) error {
	week := s.clk.WeekStart()

	ids, err := s.profiles.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	granted := 0
	for _, id := range ids {
		profile, err := s.profiles.GetByID(ctx, id)
		if err != nil {
			s.logger.Warnw("failed to load profile for freeze grant", "profile_id", id, "error", err)
			continue
		}

		if profile.StreakFreezesAvailable >= maxStreakFreezes {
			continue
		}
		if profile.LastFreezeGrantedWeek != nil && *profile.LastFreezeGrantedWeek == week {
			continue
		}

		profile.StreakFreezesAvailable++
		profile.LastFreezeGrantedWeek = &week
		profile.UpdatedAt = s.clk.Now()

		if err := s.profiles.Update(ctx, profile); err != nil {
			s.logger.Warnw("failed to grant freeze", "profile_id", id, "error", err)
			continue
		}
		granted++
	}

	s.logger.Infow("weekly freeze grant completed", "week", week, "profiles", len(ids), "granted", granted)
	return nil
}
