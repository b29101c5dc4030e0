package calendar

import "github.com/tartampluch/go-datewheel/internal/config"

// DayRange is the day wheel derived for a (year, month) pair.
type DayRange struct {
	// Days is 1..N where N is the month length.
	Days []int
	// Selected is the previous day selection clamped into Days.
	Selected int
	// Fallback is set when the month length could not be computed and a
	// one-day month was used instead.
	Fallback bool
}

// Last returns the last valid day.
func (r DayRange) Last() int {
	return len(r.Days)
}

// Clamped reports whether Selected differs from the requested day.
func (r DayRange) Clamped(requested int) bool {
	return r.Selected != requested
}

// DeriveDayRange computes the valid days of month in year and clamps
// selected into them. An unknown year is sized with the reference leap
// year so February 29 stays available. A selection past the end of the
// month, or otherwise outside it, moves to the last valid day: January 31
// becomes February 28 (or 29), never February 1.
func DeriveDayRange(year Year, month, selected int) DayRange {
	last, ok := LastDayOfMonth(year.Or(config.ReferenceLeapYear), month)
	if !ok {
		last = 1
	}

	days := make([]int, last)
	for i := range days {
		days[i] = i + 1
	}

	if selected < 1 || selected > last {
		selected = last
	}
	return DayRange{Days: days, Selected: selected, Fallback: !ok}
}
