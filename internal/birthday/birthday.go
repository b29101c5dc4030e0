// Package birthday models a birthday whose year may be unknown.
package birthday

import (
	"fmt"

	"github.com/tartampluch/go-datewheel/internal/calendar"
)

// Date is a birthday. It is either a MonthDay or a FullDate.
type Date interface {
	// Components returns the year (possibly unknown), month and day.
	Components() (year calendar.Year, month, day int)
	fmt.Stringer
	isDate()
}

// MonthDay is a birthday recorded without a year.
type MonthDay struct {
	Month int
	Day   int
}

// FullDate is a birthday with a known year.
type FullDate struct {
	Year  int
	Month int
	Day   int
}

// New returns the variant matching year.
func New(year calendar.Year, month, day int) Date {
	if y, ok := year.Get(); ok {
		return FullDate{Year: y, Month: month, Day: day}
	}
	return MonthDay{Month: month, Day: day}
}

func (d MonthDay) Components() (calendar.Year, int, int) {
	return calendar.UnknownYear, d.Month, d.Day
}

func (d MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", d.Month, d.Day)
}

func (MonthDay) isDate() {}

func (d FullDate) Components() (calendar.Year, int, int) {
	return calendar.Known(d.Year), d.Month, d.Day
}

func (d FullDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (FullDate) isDate() {}
