package calendar

import "strconv"

// Year is an optional calendar year. The zero value is UnknownYear.
type Year struct {
	value int
	known bool
}

// UnknownYear is the year of a birthday recorded without one.
var UnknownYear = Year{}

// Known wraps a concrete year.
func Known(year int) Year {
	return Year{value: year, known: true}
}

// Get returns the year and whether it is known.
func (y Year) Get() (int, bool) {
	return y.value, y.known
}

// IsKnown reports whether the year is set.
func (y Year) IsKnown() bool {
	return y.known
}

// Or returns the year, or ref when it is unknown.
func (y Year) Or(ref int) int {
	if !y.known {
		return ref
	}
	return y.value
}

func (y Year) String() string {
	if !y.known {
		return "unknown"
	}
	return strconv.Itoa(y.value)
}
