// Package picker contains the view-models behind the wheel pickers. A
// view-model decomposes a bound value into wheel selections, keeps the day
// wheel consistent with the chosen year and month, and writes every change
// back to the binding. Renderers only see the []Column projection.
package picker

import (
	"log/slog"
	"strconv"

	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
)

// State of a view-model.
type State int

const (
	Initializing State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "initializing"
}

// Options configure a view-model. Zero values select the defaults.
type Options struct {
	// CountYears is the span of the year wheel. Non-positive values use
	// config.DefaultCountYears.
	CountYears int
	Clock      calendar.Clock
	// Resolver places the date wheels. Nil means the fallback order.
	Resolver *locale.Resolver
	Logger   *slog.Logger
}

func (o Options) withDefaults(name string) Options {
	if o.CountYears <= 0 {
		o.CountYears = config.DefaultCountYears
	}
	if o.Clock == nil {
		o.Clock = calendar.RealClock{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	o.Logger = o.Logger.With(
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyPicker, name,
	)
	return o
}

// Model is what renderers need from a view-model.
type Model interface {
	Columns(labels locale.Labels) []Column
	Appear()
	State() State
	Close()
}

// core is the binding plumbing shared by every view-model.
type core[T any] struct {
	bound   *binding.Value[T]
	log     *slog.Logger
	state   State
	writing bool
	cancel  func()
}

// watch subscribes resync to changes made by anyone but the view-model.
func (c *core[T]) watch(resync func(T)) {
	c.cancel = c.bound.Subscribe(func(v T) {
		if c.writing {
			return
		}
		c.state = Initializing
		resync(v)
		c.state = Ready
		c.log.Debug(config.MsgResync)
	})
	c.state = Ready
}

func (c *core[T]) write(v T) {
	c.writing = true
	defer func() { c.writing = false }()
	c.bound.Set(v)
	c.log.Debug(config.MsgBoundUpdated, config.LogKeyValue, v)
}

// State returns the lifecycle state.
func (c *core[T]) State() State {
	return c.state
}

// Close detaches the view-model from its binding.
func (c *core[T]) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *core[T]) ignored(wheel string, v any) {
	c.log.Debug(config.MsgSelectIgnored,
		config.LogKeyWheel, wheel,
		config.LogKeyValue, v,
	)
}

// dates is the year, month and day wheel logic shared by the two date
// pickers. Y is the year wheel's element type.
type dates[Y comparable] struct {
	Year  *Wheel[Y]
	Month *Wheel[int]
	Day   *Wheel[int]

	resolver *locale.Resolver
	year     func(Y) calendar.Year
}

// setFrom loads the wheels from a decomposed value.
func (d *dates[Y]) setFrom(year Y, month, day int) {
	d.Year.set(year)
	d.Month.set(month)
	r := calendar.DeriveDayRange(d.year(year), month, day)
	d.Day.setItems(r.Days)
	d.Day.set(r.Selected)
}

// rederive recomputes the day wheel for the current year and month.
func (d *dates[Y]) rederive(log *slog.Logger) {
	requested := d.Day.Selected()
	r := calendar.DeriveDayRange(d.year(d.Year.Selected()), d.Month.Selected(), requested)

	if r.Fallback {
		log.Debug(config.MsgRangeFallback,
			config.LogKeyYear, d.year(d.Year.Selected()).String(),
			config.LogKeyMonth, d.Month.Selected(),
		)
	}
	if d.Day.setItems(r.Days) {
		log.Debug(config.MsgWheelRekeyed,
			config.LogKeyWheel, KindDay.String(),
			config.LogKeyCount, r.Last(),
		)
	}
	if r.Clamped(requested) {
		log.Debug(config.MsgDayClamped,
			config.LogKeyOld, requested,
			config.LogKeyNew, r.Selected,
		)
	}
	d.Day.set(r.Selected)
}

func (d *dates[Y]) columns(labels locale.Labels, yearLabel func(Y) string,
	selYear func(Y), selMonth, selDay func(int)) []Column {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	year := column(KindYear, d.Year, false, yearLabel, selYear)
	month := column(KindMonth, d.Month, true, labels.MonthName, selMonth)
	day := column(KindDay, d.Day, true, strconv.Itoa, selDay)
	return placeDate(d.resolver.Layout(), year, month, day)
}
