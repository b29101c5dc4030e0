package picker

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
)

// Format is the hour cycle of a Timer.
type Format int

const (
	Hours24 Format = iota
	Hours12
)

// ParseFormat maps the -format flag values "12" and "24".
func ParseFormat(s string) (Format, error) {
	switch s {
	case config.Format24:
		return Hours24, nil
	case config.Format12:
		return Hours12, nil
	}
	return Hours24, fmt.Errorf("%s: %q", config.ErrFormatName, s)
}

func (f Format) String() string {
	if f == Hours12 {
		return config.Format12
	}
	return config.Format24
}

// Meridiem is the AM/PM wheel value.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Timer edits the clock part of a time value: hour, minute and, in the
// 12-hour format, AM/PM. The date, the seconds and the location of the
// bound value are never touched.
//
// In the 12-hour format the hour wheel holds 0..11 and PM adds 12, so
// noon reads "00 PM".
type Timer struct {
	core[time.Time]

	Hour   *Wheel[int]
	Minute *Wheel[int]
	AmPm   *Wheel[Meridiem]

	format Format
}

// NewTimer decomposes the bound time into wheels and starts following the
// binding. Only opts.Logger is used.
func NewTimer(bound *binding.Value[time.Time], format Format, opts Options) *Timer {
	opts = opts.withDefaults(config.PickerTimer)

	hours := config.HoursPerDay
	if format == Hours12 {
		hours = config.HoursHalfDay
	}

	p := &Timer{
		core:   core[time.Time]{bound: bound, log: opts.Logger},
		Hour:   newWheel(intRange(0, hours-1), 0),
		Minute: newWheel(intRange(0, config.MinutesPerHour-1), 0),
		AmPm:   newWheel([]Meridiem{AM, PM}, AM),
		format: format,
	}
	p.decompose(bound.Get())
	p.watch(p.decompose)
	return p
}

// Format returns the hour cycle.
func (p *Timer) Format() Format {
	return p.format
}

func (p *Timer) decompose(t time.Time) {
	h, m, _ := t.Clock()
	mer := AM
	if p.format == Hours12 && h >= config.HoursHalfDay {
		h -= config.HoursHalfDay
		mer = PM
	}
	p.Hour.set(h)
	p.Minute.set(m)
	p.AmPm.set(mer)
}

// SelectHour handles a scroll on the hour wheel.
func (p *Timer) SelectHour(h int) {
	if !p.Hour.Contains(h) {
		p.ignored(KindHour.String(), h)
		return
	}
	p.Hour.set(h)
	p.commit()
}

// SelectMinute handles a scroll on the minute wheel.
func (p *Timer) SelectMinute(m int) {
	if !p.Minute.Contains(m) {
		p.ignored(KindMinute.String(), m)
		return
	}
	p.Minute.set(m)
	p.commit()
}

// SelectAmPm handles a scroll on the AM/PM wheel. It is ignored in the
// 24-hour format.
func (p *Timer) SelectAmPm(m Meridiem) {
	if p.format != Hours12 || !p.AmPm.Contains(m) {
		p.ignored(KindAmPm.String(), m.String())
		return
	}
	p.AmPm.set(m)
	p.commit()
}

// Appear reloads the wheels from the bound value. There is nothing to
// derive for a clock, so the binding is not written.
func (p *Timer) Appear() {
	p.decompose(p.bound.Get())
}

// Hour24 returns the selected hour on the 24-hour clock.
func (p *Timer) Hour24() int {
	h := p.Hour.Selected()
	if p.format == Hours12 && p.AmPm.Selected() == PM {
		h += config.HoursHalfDay
	}
	return h
}

// TimeOfDay returns the bound clock time.
func (p *Timer) TimeOfDay() datetime.TimeOfDay {
	h, m, s := p.bound.Get().Clock()
	return datetime.NewTimeOfDay(h, m, s)
}

func (p *Timer) commit() {
	cur := p.bound.Get()
	f := calendar.FieldsOf(cur)
	h, m := p.Hour24(), p.Minute.Selected()

	t, ok := calendar.Compose(cur.Location(), f.Year, f.Month, f.Day, h, m, f.Second)
	// Inside a DST gap the location moves the wall clock off the wheels.
	if !ok || t.Hour() != h || t.Minute() != m {
		p.log.Debug(config.MsgComposeSkipped,
			config.LogKeyHour, h,
			config.LogKeyMinute, m,
		)
		p.decompose(cur)
		return
	}
	p.write(t)
}

// Columns projects hour, minute and, in the 12-hour format, AM/PM.
func (p *Timer) Columns(labels locale.Labels) []Column {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	twoDigits := func(v int) string { return fmt.Sprintf(config.FormatTwoDigits, v) }

	cols := []Column{
		column(KindHour, p.Hour, true, twoDigits, p.SelectHour),
		column(KindMinute, p.Minute, true, twoDigits, p.SelectMinute),
	}
	if p.format == Hours12 {
		label := func(m Meridiem) string { return labels.AmPm(m == PM) }
		cols = append(cols, column(KindAmPm, p.AmPm, false, label, p.SelectAmPm))
	}
	return cols
}
