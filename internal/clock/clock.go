package clock

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used everywhere in the system.
const DateLayout = "2006-01-02"

// Clock supplies calendar dates in the service's reference timezone.
// All streak and check-in logic operates on these date strings, never on
// raw timestamps, so injecting a fixed clock makes the engine deterministic.
type Clock interface {
	Now() time.Time
	Today() string
	Yesterday() string
	// DaysAgo returns the date n calendar days before today. DaysAgo(0) == Today().
	DaysAgo(n int) string
	// WeekStart returns the Monday of the current ISO week.
	WeekStart() string
	// WeekdayName returns the short weekday label ("Mon".."Sun") for a date string.
	WeekdayName(date string) string
}

// Wall is the production clock, bound to a configured IANA timezone.
type Wall struct {
	loc *time.Location
}

// NewWall creates a wall clock for the given timezone name. An empty name
// selects UTC.
func NewWall(timezone string) (*Wall, error) {
	if timezone == "" {
		return &Wall{loc: time.UTC}, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	return &Wall{loc: loc}, nil
}

func (w *Wall) Now() time.Time {
	return time.Now().In(w.loc)
}

func (w *Wall) Today() string {
	return w.Now().Format(DateLayout)
}

func (w *Wall) Yesterday() string {
	return w.DaysAgo(1)
}

func (w *Wall) DaysAgo(n int) string {
	return w.Now().AddDate(0, 0, -n).Format(DateLayout)
}

func (w *Wall) WeekStart() string {
	return weekStart(w.Now())
}

func (w *Wall) WeekdayName(date string) string {
	return weekdayName(date)
}

// Fixed is a deterministic clock for tests. The zero value is unusable;
// construct it with NewFixed.
type Fixed struct {
	current time.Time
}

// NewFixed creates a fixed clock pinned to the given date string.
func NewFixed(date string) (*Fixed, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return &Fixed{current: t}, nil
}

// Advance moves the clock forward by n calendar days.
func (f *Fixed) Advance(days int) {
	f.current = f.current.AddDate(0, 0, days)
}

func (f *Fixed) Now() time.Time { return f.current }

func (f *Fixed) Today() string { return f.current.Format(DateLayout) }

func (f *Fixed) Yesterday() string { return f.DaysAgo(1) }

func (f *Fixed) DaysAgo(n int) string {
	return f.current.AddDate(0, 0, -n).Format(DateLayout)
}

func (f *Fixed) WeekStart() string { return weekStart(f.current) }

func (f *Fixed) WeekdayName(date string) string { return weekdayName(date) }

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

func weekdayName(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
