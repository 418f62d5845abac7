package service

import "context"

// FreezeService issues the weekly streak-freeze grants.
type FreezeService interface {
	// GrantWeeklyFreezes sweeps all profiles and grants one freeze to each
	// profile that has not been granted one this calendar week and is below
	// the freeze cap.
	GrantWeeklyFreezes(ctx context.Context) error
}
