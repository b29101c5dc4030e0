// Package locale decides where the year, month and day wheels go and
// supplies the localized strings the wheels display.
package locale

import (
	"log/slog"
	"strings"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Component is one of the three date wheels.
type Component int

const (
	Year Component = iota
	Month
	Day
)

func (c Component) String() string {
	switch c {
	case Year:
		return "year"
	case Month:
		return "month"
	default:
		return "day"
	}
}

func (c Component) symbol() byte {
	switch c {
	case Year:
		return 'Y'
	case Month:
		return 'M'
	default:
		return 'D'
	}
}

// Order lists the date components left to right.
type Order [3]Component

// FallbackOrder is used whenever no usable short date format is known.
var FallbackOrder = Order{Year, Month, Day}

// Index returns the 0-based position of c.
func (o Order) Index(c Component) int {
	for i, oc := range o {
		if oc == c {
			return i
		}
	}
	return -1
}

// String renders the order as its three symbols, e.g. "DMY".
func (o Order) String() string {
	b := make([]byte, len(o))
	for i, c := range o {
		b[i] = c.symbol()
	}
	return string(b)
}

// ParseOrder reduces a date format template such as "dd.MM.yyyy" or
// "M/d/yy" to the order of its year, month and day fields. Letters are
// matched case-insensitively, runs collapse to one field, quoted literals
// and every other character are dropped, and a field's first occurrence
// fixes its position. It reports false unless all three fields appear.
func ParseOrder(format string) (Order, bool) {
	var (
		order   Order
		n       int
		seen    [3]bool
		quoted  bool
		unknown = Component(-1)
	)

	for _, r := range format {
		if r == '\'' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}

		c := unknown
		switch r {
		case 'y', 'Y':
			c = Year
		case 'm', 'M', 'l', 'L':
			c = Month
		case 'd', 'D':
			c = Day
		}
		if c == unknown || seen[c] {
			continue
		}
		seen[c] = true
		order[n] = c
		n++
	}

	if n != len(order) {
		return FallbackOrder, false
	}
	return order, true
}

// FormatProvider supplies the active locale's short date format template.
type FormatProvider interface {
	ShortDateFormat() (string, bool)
}

// FixedFormat is a FormatProvider returning a constant template.
// The empty FixedFormat reports no format.
type FixedFormat string

// ShortDateFormat implements FormatProvider.
func (f FixedFormat) ShortDateFormat() (string, bool) {
	return string(f), f != ""
}

// Resolver maps date components to their left-to-right wheel slots for
// the current locale. It is consulted on every layout because the locale
// may change at runtime. A nil Resolver, or one without a Provider,
// always yields FallbackOrder.
type Resolver struct {
	Provider FormatProvider
	Logger   *slog.Logger
}

// NewResolver returns a Resolver reading formats from p.
func NewResolver(p FormatProvider) *Resolver {
	return &Resolver{Provider: p}
}

// Order returns the current component order. It reports false, and
// returns FallbackOrder, when the provider has no usable format.
func (r *Resolver) Order() (Order, bool) {
	if r == nil || r.Provider == nil {
		return FallbackOrder, false
	}

	format, ok := r.Provider.ShortDateFormat()
	if !ok || strings.TrimSpace(format) == "" {
		r.logger().Debug(config.MsgFormatMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyOrder, FallbackOrder.String())
		return FallbackOrder, false
	}

	order, ok := ParseOrder(format)
	if !ok {
		r.logger().Debug(config.MsgFormatInvalid,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyFormat, format,
			config.LogKeyOrder, FallbackOrder.String())
	}
	return order, ok
}

// OrderIndex returns the slot of c. When ok is false the index comes from
// FallbackOrder.
func (r *Resolver) OrderIndex(c Component) (index int, ok bool) {
	order, ok := r.Order()
	return order.Index(c), ok
}

// Layout returns the components left to right, falling back when needed.
func (r *Resolver) Layout() Order {
	order, _ := r.Order()
	return order
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
