package picker

import (
	"strconv"

	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
)

// Birthday edits a birthday whose year may be unknown. Its year wheel
// starts with the unknown-year entry followed by the current year and the
// CountYears years before it.
type Birthday struct {
	core[birthday.Date]
	dates[calendar.Year]
}

// NewBirthday decomposes the bound birthday into wheels and starts
// following the binding. A nil bound value reads as January 1 without a
// year.
func NewBirthday(bound *binding.Value[birthday.Date], opts Options) *Birthday {
	opts = opts.withDefaults(config.PickerBirthday)

	current := opts.Clock.Now().Year()
	years := []calendar.Year{calendar.UnknownYear}
	for _, y := range descending(current, current-opts.CountYears) {
		years = append(years, calendar.Known(y))
	}

	p := &Birthday{
		core: core[birthday.Date]{bound: bound, log: opts.Logger},
		dates: dates[calendar.Year]{
			Year:     newWheel(years, calendar.UnknownYear),
			Month:    newWheel(intRange(1, config.MonthsPerYear), 1),
			Day:      newWheel([]int{1}, 1),
			resolver: opts.Resolver,
			year:     func(y calendar.Year) calendar.Year { return y },
		},
	}
	p.decompose(bound.Get())
	p.watch(p.decompose)
	return p
}

func (p *Birthday) decompose(d birthday.Date) {
	if d == nil {
		d = birthday.MonthDay{Month: 1, Day: 1}
	}
	p.setFrom(d.Components())
}

// SelectYear handles a scroll on the year wheel.
func (p *Birthday) SelectYear(y calendar.Year) {
	if !p.Year.Contains(y) {
		p.ignored(KindYear.String(), y.String())
		return
	}
	p.Year.set(y)
	p.rederive(p.log)
	p.commit()
}

// SelectMonth handles a scroll on the month wheel.
func (p *Birthday) SelectMonth(m int) {
	if !p.Month.Contains(m) {
		p.ignored(KindMonth.String(), m)
		return
	}
	p.Month.set(m)
	p.rederive(p.log)
	p.commit()
}

// SelectDay handles a scroll on the day wheel.
func (p *Birthday) SelectDay(d int) {
	if !p.Day.Contains(d) {
		p.ignored(KindDay.String(), d)
		return
	}
	p.Day.set(d)
	p.commit()
}

// Appear re-derives the day wheel and writes the result back. Calling it
// twice has the same effect as calling it once.
func (p *Birthday) Appear() {
	p.rederive(p.log)
	p.commit()
}

// Value returns the birthday denoted by the wheels.
func (p *Birthday) Value() birthday.Date {
	return birthday.New(p.Year.Selected(), p.Month.Selected(), p.Day.Selected())
}

func (p *Birthday) commit() {
	// Every (year, month, day) left by rederive is a valid birthday.
	p.write(p.Value())
}

// Columns projects the wheels left to right in locale order.
func (p *Birthday) Columns(labels locale.Labels) []Column {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	yearLabel := func(y calendar.Year) string {
		if v, ok := y.Get(); ok {
			return strconv.Itoa(v)
		}
		return labels.UnknownYear()
	}
	return p.columns(labels, yearLabel, p.SelectYear, p.SelectMonth, p.SelectDay)
}
