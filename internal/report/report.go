// Package report computes the dashboard's run-rate projections and the
// fortnight window the points leaderboard resets on.
package report

import "time"

// Project scales a partial-period total up to a full-period estimate:
// current * totalUnits / elapsedUnits. A non-positive elapsed term (start
// of a period) falls back to a denominator of 1 so the figure stays finite.
// This is a naive linear extrapolation, not a forecast.
func Project(current, elapsedUnits, totalUnits float64) float64 {
	if elapsedUnits <= 0 {
		elapsedUnits = 1
	}
	return current * totalUnits / elapsedUnits
}

// DayUnits: elapsed hours (with minute fraction) out of 24.
func DayUnits(now time.Time) (elapsed, total float64) {
	elapsed = float64(now.Hour()) + float64(now.Minute())/60
	return elapsed, 24
}

// WeekUnits: elapsed days out of 7, Sunday-start weeks (day 0 = Sunday).
func WeekUnits(now time.Time) (elapsed, total float64) {
	elapsed = float64(int(now.Weekday())-1) + hourFraction(now)
	return elapsed, 7
}

// MonthUnits: elapsed days out of the current month's length.
func MonthUnits(now time.Time) (elapsed, total float64) {
	elapsed = float64(now.Day()-1) + hourFraction(now)
	return elapsed, float64(daysInMonth(now))
}

func hourFraction(now time.Time) float64 {
	return (float64(now.Hour()) + float64(now.Minute())/60) / 24
}

func daysInMonth(now time.Time) int {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// FortnightStart returns the moment the current leaderboard window opened:
// the 1st of the month before the 16th, the 16th after.
func FortnightStart(now time.Time) time.Time {
	day := 1
	if now.Day() >= 16 {
		day = 16
	}
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}
