// Package calendar holds the Gregorian calendar arithmetic behind the wheel
// pickers: month lengths, composing a time from discrete fields and reading
// those fields back.
package calendar

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// Field identifies one calendar field of a time value.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

// Fields is the decomposed form of a time value.
type Fields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FieldsOf extracts every calendar field of t in t's own location.
func FieldsOf(t time.Time) Fields {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return Fields{Year: y, Month: int(m), Day: d, Hour: h, Minute: mi, Second: s}
}

// Get returns the value of a single field.
func (f Fields) Get(field Field) int {
	switch field {
	case FieldYear:
		return f.Year
	case FieldMonth:
		return f.Month
	case FieldDay:
		return f.Day
	case FieldHour:
		return f.Hour
	case FieldMinute:
		return f.Minute
	default:
		return f.Second
	}
}

// FieldOf extracts a single calendar field of t.
func FieldOf(t time.Time, field Field) int {
	return FieldsOf(t).Get(field)
}

// Compose builds the time denoted by the given fields in loc.
// It reports false when the fields do not form a valid Gregorian date
// (for example February 30) or a clock field is out of range. A nil loc
// means time.Local.
func Compose(loc *time.Location, year, month, day, hour, minute, second int) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	if hour < 0 || hour >= config.HoursPerDay ||
		minute < 0 || minute >= config.MinutesPerHour ||
		second < 0 || second >= config.SecondsPerMin {
		return time.Time{}, false
	}
	last, ok := LastDayOfMonth(year, month)
	if !ok || day < 1 || day > last {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)

	// A DST gap may move the wall clock, never the date.
	y, m, d := t.Date()
	if y != year || int(m) != month || d != day {
		return time.Time{}, false
	}
	return t, true
}

// ComposeDate is Compose at midnight.
func ComposeDate(loc *time.Location, year, month, day int) (time.Time, bool) {
	return Compose(loc, year, month, day, 0, 0, 0)
}

// LastDayOfMonth returns the number of days in month of year.
// It reports false when month is outside 1..12 or year is outside the
// supported range.
func LastDayOfMonth(year, month int) (int, bool) {
	if month < 1 || month > config.MonthsPerYear {
		return 0, false
	}
	if year < config.MinYear || year > config.MaxYear {
		return 0, false
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month))), true
}
