package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/internal/domain/entity"
	"github.com/amitb25/habit-backend-sub001/internal/domain/repository"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// In-memory repositories backing the service tests. They copy entities on
// both reads and writes so tests observe only what Update persisted.

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyProfile(p *entity.Profile) *entity.Profile {
	c := *p
	c.LastActiveDate = copyStr(p.LastActiveDate)
	c.LastFreezeGrantedWeek = copyStr(p.LastFreezeGrantedWeek)
	return &c
}

func copyHabit(h *entity.Habit) *entity.Habit {
	c := *h
	c.LastCompletedDate = copyStr(h.LastCompletedDate)
	return &c
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.Profile
	order    []uuid.UUID
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (r *fakeProfileRepo) add(p *entity.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = copyProfile(p)
	r.order = append(r.order, p.ID)
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return copyProfile(p), nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.ID]; !ok {
		return repository.ErrProfileNotFound
	}
	r.profiles[p.ID] = copyProfile(p)
	return nil
}

func (r *fakeProfileRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uuid.UUID, len(r.order))
	copy(ids, r.order)
	return ids, nil
}

type fakeHabitRepo struct {
	mu     sync.Mutex
	habits map[uuid.UUID]*entity.Habit
	order  []uuid.UUID
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
}

func (r *fakeHabitRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok {
		return nil, repository.ErrHabitNotFound
	}
	return copyHabit(h), nil
}

func (r *fakeHabitRepo) GetByProfileID(_ context.Context, profileID uuid.UUID) ([]*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Habit
	for _, id := range r.order {
		if h := r.habits[id]; h != nil && h.ProfileID == profileID {
			out = append(out, copyHabit(h))
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.habits[h.ID] = copyHabit(h)
	r.order = append(r.order, h.ID)
	return nil
}

func (r *fakeHabitRepo) Update(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[h.ID]; !ok {
		return repository.ErrHabitNotFound
	}
	r.habits[h.ID] = copyHabit(h)
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[id]; !ok {
		return repository.ErrHabitNotFound
	}
	delete(r.habits, id)
	return nil
}

type fakeHabitLogRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]map[string]*entity.HabitLog // habitID -> date -> row
}

func newFakeHabitLogRepo() *fakeHabitLogRepo {
	return &fakeHabitLogRepo{rows: make(map[uuid.UUID]map[string]*entity.HabitLog)}
}

func (r *fakeHabitLogRepo) Insert(_ context.Context, log *entity.HabitLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byDate, ok := r.rows[log.HabitID]
	if !ok {
		byDate = make(map[string]*entity.HabitLog)
		r.rows[log.HabitID] = byDate
	}
	if _, exists := byDate[log.CompletedDate]; exists {
		return nil
	}
	c := *log
	byDate[log.CompletedDate] = &c
	return nil
}

func (r *fakeHabitLogRepo) DeleteByDate(_ context.Context, habitID uuid.UUID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if byDate, ok := r.rows[habitID]; ok {
		delete(byDate, date)
	}
	return nil
}

func (r *fakeHabitLogRepo) ExistsForDate(_ context.Context, habitID uuid.UUID, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byDate, ok := r.rows[habitID]
	if !ok {
		return false, nil
	}
	_, exists := byDate[date]
	return exists, nil
}

func (r *fakeHabitLogRepo) CountByDateRange(_ context.Context, profileID uuid.UUID, from, to string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int)
	for _, byDate := range r.rows {
		for date, row := range byDate {
			if row.ProfileID == profileID && date >= from && date <= to {
				counts[date]++
			}
		}
	}
	return counts, nil
}

type checkinKey struct {
	profileID uuid.UUID
	date      string
}

type fakeCheckinRepo struct {
	mu   sync.Mutex
	rows map[checkinKey]*entity.DailyCheckin
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{rows: make(map[checkinKey]*entity.DailyCheckin)}
}

func (r *fakeCheckinRepo) Upsert(_ context.Context, checkin *entity.DailyCheckin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *checkin
	r.rows[checkinKey{checkin.ProfileID, checkin.CheckinDate}] = &c
	return nil
}

func (r *fakeCheckinRepo) GetByDateRange(_ context.Context, profileID uuid.UUID, from, to string) ([]*entity.DailyCheckin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DailyCheckin
	for key, row := range r.rows {
		if key.profileID == profileID && key.date >= from && key.date <= to {
			c := *row
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCheckinRepo) get(profileID uuid.UUID, date string) *entity.DailyCheckin {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[checkinKey{profileID, date}]
}

type fakeXPLogRepo struct {
	mu      sync.Mutex
	entries []*entity.XPLogEntry
}

func newFakeXPLogRepo() *fakeXPLogRepo {
	return &fakeXPLogRepo{}
}

func (r *fakeXPLogRepo) Insert(_ context.Context, entry *entity.XPLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *entry
	r.entries = append(r.entries, &c)
	return nil
}

func (r *fakeXPLogRepo) SumPositiveByDateRange(_ context.Context, profileID uuid.UUID, from, to string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sums := make(map[string]int)
	for _, e := range r.entries {
		if e.ProfileID == profileID && e.Amount > 0 && e.ReferenceDate >= from && e.ReferenceDate <= to {
			sums[e.ReferenceDate] += e.Amount
		}
	}
	return sums, nil
}

func (r *fakeXPLogRepo) reasons(profileID uuid.UUID, date string) []entity.XPReason {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.XPReason
	for _, e := range r.entries {
		if e.ProfileID == profileID && e.ReferenceDate == date {
			out = append(out, e.Reason)
		}
	}
	return out
}

type fakeFreezeRepo struct {
	mu   sync.Mutex
	rows map[checkinKey]*entity.StreakFreeze
}

func newFakeFreezeRepo() *fakeFreezeRepo {
	return &fakeFreezeRepo{rows: make(map[checkinKey]*entity.StreakFreeze)}
}

func (r *fakeFreezeRepo) Insert(_ context.Context, freeze *entity.StreakFreeze) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := checkinKey{freeze.ProfileID, freeze.FreezeDate}
	if _, exists := r.rows[key]; exists {
		return nil
	}
	c := *freeze
	r.rows[key] = &c
	return nil
}

func (r *fakeFreezeRepo) ExistsForDate(_ context.Context, profileID uuid.UUID, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.rows[checkinKey{profileID, date}]
	return exists, nil
}

type publishedEvent struct {
	kind    string
	habitID uuid.UUID
	value   int
	date    string
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishLevelUp(_ context.Context, _ uuid.UUID, level int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{kind: "level_up", value: level})
	return nil
}

func (p *fakePublisher) PublishStreakMilestone(_ context.Context, _ uuid.UUID, habitID uuid.UUID, streak int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{kind: "streak_milestone", habitID: habitID, value: streak})
	return nil
}

func (p *fakePublisher) PublishFreezeUsed(_ context.Context, _ uuid.UUID, habitID uuid.UUID, date string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{kind: "freeze_used", habitID: habitID, date: date})
	return nil
}

func (p *fakePublisher) byKind(kind string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]*service.Analytics
	invalidated int
	setCount    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]*service.Analytics)}
}

func (c *fakeCache) Get(_ context.Context, profileID uuid.UUID) (*service.Analytics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.entries[profileID]
	return a, ok
}

func (c *fakeCache) Set(_ context.Context, profileID uuid.UUID, analytics *service.Analytics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[profileID] = analytics
	c.setCount++
}

func (c *fakeCache) Invalidate(_ context.Context, profileID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, profileID)
	c.invalidated++
}
