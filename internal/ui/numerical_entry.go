package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts numeric input.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewRangeEntry returns a NumericalEntry whose validator requires a value
// in [lo, hi]. The messages are produced at validation time so they
// follow the active language.
func NewRangeEntry(lo, hi int, required, outOfRange func() string) *NumericalEntry {
	entry := NewNumericalEntry()
	entry.Validator = func(s string) error {
		if s == "" {
			return errors.New(required())
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < lo || n > hi {
			return errors.New(outOfRange())
		}
		return nil
	}
	return entry
}

// Int returns the entry's value.
func (e *NumericalEntry) Int() (int, bool) {
	n, err := strconv.Atoi(e.Text)
	return n, err == nil
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9).
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
	// Pasted text bypasses this filter; the Validator covers it.
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
