package picker

import (
	"slices"

	"github.com/tartampluch/go-datewheel/internal/locale"
)

// Wheel is the selection state of one wheel: the current value and the
// candidates it is drawn from. The current value may lie outside the
// candidates when the bound value does (a year beyond the offered span);
// Index then reports -1.
type Wheel[T comparable] struct {
	items    []T
	selected T
}

func newWheel[T comparable](items []T, selected T) *Wheel[T] {
	return &Wheel[T]{items: items, selected: selected}
}

// Items returns a copy of the candidates.
func (w *Wheel[T]) Items() []T {
	return slices.Clone(w.items)
}

// Len returns the number of candidates.
func (w *Wheel[T]) Len() int {
	return len(w.items)
}

// Selected returns the current value.
func (w *Wheel[T]) Selected() T {
	return w.selected
}

// Index returns the position of the current value, or -1.
func (w *Wheel[T]) Index() int {
	return slices.Index(w.items, w.selected)
}

// At returns the candidate at i.
func (w *Wheel[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(w.items) {
		var zero T
		return zero, false
	}
	return w.items[i], true
}

// Contains reports whether v is a candidate.
func (w *Wheel[T]) Contains(v T) bool {
	return slices.Contains(w.items, v)
}

// Key identifies the candidate list for renderers; a new key forces a
// remount. Only the day list changes at runtime and its content follows
// from its size, so the size is the key.
func (w *Wheel[T]) Key() int {
	return len(w.items)
}

// setItems replaces the candidates and reports whether the key changed.
func (w *Wheel[T]) setItems(items []T) bool {
	rekeyed := len(items) != len(w.items)
	w.items = items
	return rekeyed
}

func (w *Wheel[T]) set(v T) {
	w.selected = v
}

// Kind names what a column shows.
type Kind int

const (
	KindYear Kind = iota
	KindMonth
	KindDay
	KindHour
	KindMinute
	KindAmPm
)

func (k Kind) String() string {
	switch k {
	case KindYear:
		return "year"
	case KindMonth:
		return "month"
	case KindDay:
		return "day"
	case KindHour:
		return "hour"
	case KindMinute:
		return "minute"
	default:
		return "ampm"
	}
}

// Column is a renderer-facing projection of one wheel.
type Column struct {
	Kind   Kind
	Labels []string
	// Selected is the index of the current value, or -1.
	Selected int
	// Key changes whenever the renderer must remount the column.
	Key int
	// Circular columns wrap around when scrolled past either end.
	Circular bool
	// Select reports that the user scrolled to Labels[index].
	Select func(index int)
}

func column[T comparable](kind Kind, w *Wheel[T], circular bool, label func(T) string, sel func(T)) Column {
	labels := make([]string, len(w.items))
	for i, v := range w.items {
		labels[i] = label(v)
	}
	return Column{
		Kind:     kind,
		Labels:   labels,
		Selected: w.Index(),
		Key:      w.Key(),
		Circular: circular,
		Select: func(index int) {
			if v, ok := w.At(index); ok {
				sel(v)
			}
		},
	}
}

// placeDate orders the year, month and day columns for the locale.
func placeDate(order locale.Order, year, month, day Column) []Column {
	cols := make([]Column, 0, len(order))
	for _, c := range order {
		switch c {
		case locale.Year:
			cols = append(cols, year)
		case locale.Month:
			cols = append(cols, month)
		default:
			cols = append(cols, day)
		}
	}
	return cols
}

func intRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func descending(from, to int) []int {
	out := make([]int, 0, from-to+1)
	for i := from; i >= to; i-- {
		out = append(out, i)
	}
	return out
}
