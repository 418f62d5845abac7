package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

type habitService struct {
	habits   repository.HabitRepository
	profiles repository.ProfileRepository
	clk      clock.Clock
}

// NewHabitService creates the thin habit/profile service around the engine.
func NewHabitService(habits repository.HabitRepository, profiles repository.ProfileRepository, clk clock.Clock) service.HabitService {
	return &habitService{habits: habits, profiles: profiles, clk: clk}
}

func (s *habitService) CreateHabit(ctx context.Context, profileID uuid.UUID, title, category string) (*entity.Habit, error) {
	// Verify the owning profile exists before creating.
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	now := s.clk.Now()
	habit := &entity.Habit{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.habits.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, habitID uuid.UUID) error {
	if _, err := s.habits.GetByID(ctx, habitID); err != nil {
		return err
	}
	return s.habits.Delete(ctx, habitID)
}

func (s *habitService) ListHabits(ctx context.Context, profileID uuid.UUID) ([]*entity.Habit, error) {
	habits, err := s.habits.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	today := s.clk.Today()
	for _, h := range habits {
		h.IsCompletedToday = h.CompletedOn(today)
	}

	return habits, nil
}

func (s *habitService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	return s.profiles.GetByID(ctx, profileID)
}
