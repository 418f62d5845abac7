package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClock(t *testing.T) {
	clk, err := NewFixed("2026-03-12")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-12", clk.Today())
	assert.Equal(t, "2026-03-11", clk.Yesterday())
	assert.Equal(t, "2026-03-12", clk.DaysAgo(0))
	assert.Equal(t, "2026-03-05", clk.DaysAgo(7))
	assert.Equal(t, "2026-02-28", clk.DaysAgo(12))
}

func TestFixedClock_Advance(t *testing.T) {
	clk, err := NewFixed("2026-03-12")
	require.NoError(t, err)

	clk.Advance(1)
	assert.Equal(t, "2026-03-13", clk.Today())
	assert.Equal(t, "2026-03-12", clk.Yesterday())

	clk.Advance(19)
	assert.Equal(t, "2026-04-01", clk.Today())
}

func TestFixedClock_InvalidDate(t *testing.T) {
	_, err := NewFixed("12-03-2026")
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	// 2026-03-12 is a Thursday; its week starts Monday 2026-03-09.
	clk, err := NewFixed("2026-03-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", clk.WeekStart())

	// Sunday still belongs to the same week.
	clk.Advance(3)
	assert.Equal(t, "2026-03-15", clk.Today())
	assert.Equal(t, "2026-03-09", clk.WeekStart())

	// Monday starts the next week.
	clk.Advance(1)
	assert.Equal(t, "2026-03-16", clk.WeekStart())
}

func TestWeekdayName(t *testing.T) {
	clk, err := NewFixed("2026-03-12")
	require.NoError(t, err)

	assert.Equal(t, "Thu", clk.WeekdayName("2026-03-12"))
	assert.Equal(t, "Mon", clk.WeekdayName("2026-03-09"))
	assert.Equal(t, "Sun", clk.WeekdayName("2026-03-15"))
	assert.Empty(t, clk.WeekdayName("garbage"))
}

func TestWallClock(t *testing.T) {
	clk, err := NewWall("")
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Format(DateLayout), clk.Today())
	assert.Equal(t, clk.DaysAgo(1), clk.Yesterday())

	_, err = NewWall("Not/AZone")
	assert.Error(t, err)
}
