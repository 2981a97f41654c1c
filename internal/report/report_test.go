package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProjectDayExample(t *testing.T) {
	// 150 by 14:30 extrapolates to 150 * 24 / 14.5
	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	elapsed, total := DayUnits(now)

	require.InDelta(t, 14.5, elapsed, 1e-9)
	require.InDelta(t, 24, total, 1e-9)
	require.InDelta(t, 248.2758620689655, Project(150, elapsed, total), 1e-9)
}

func TestProjectZeroElapsed(t *testing.T) {
	now := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	elapsed, total := DayUnits(now)

	require.InDelta(t, 0, elapsed, 1e-9)
	// denominator defaults to 1, so a midnight total projects to current*24
	require.InDelta(t, 240, Project(10, elapsed, total), 1e-9)
}

func TestWeekUnitsSundayStart(t *testing.T) {
	// 2026-08-19 is a Wednesday: weekday index 3, so 2 full days elapsed
	now := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	elapsed, total := WeekUnits(now)

	require.InDelta(t, 2.5, elapsed, 1e-9)
	require.InDelta(t, 7, total, 1e-9)

	// Sunday morning has a negative elapsed term; Project guards it
	sunday := time.Date(2026, 8, 16, 6, 0, 0, 0, time.UTC)
	elapsed, _ = WeekUnits(sunday)
	require.Less(t, elapsed, 0.0)
	require.InDelta(t, 70, Project(10, elapsed, 7), 1e-9)
}

func TestMonthUnits(t *testing.T) {
	now := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)
	elapsed, total := MonthUnits(now)

	require.InDelta(t, 15.5, elapsed, 1e-9)
	require.InDelta(t, 31, total, 1e-9)

	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	_, total = MonthUnits(feb)
	require.InDelta(t, 28, total, 1e-9)

	leapFeb := time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC)
	_, total = MonthUnits(leapFeb)
	require.InDelta(t, 29, total, 1e-9)
}

func TestFortnightStart(t *testing.T) {
	loc := time.UTC

	early := time.Date(2026, 8, 3, 10, 0, 0, 0, loc)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), FortnightStart(early))

	boundary := time.Date(2026, 8, 16, 0, 0, 0, 0, loc)
	require.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, loc), FortnightStart(boundary))

	late := time.Date(2026, 8, 29, 23, 59, 0, 0, loc)
	require.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, loc), FortnightStart(late))

	fifteenth := time.Date(2026, 8, 15, 23, 59, 0, 0, loc)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), FortnightStart(fifteenth))
}
