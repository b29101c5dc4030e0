package picker

import (
	"strconv"
	"time"

	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
)

// FutureDate edits the date part of a time value. The year wheel offers
// the current year and the CountYears years after it, latest first. The
// clock part and the location of the bound value are never touched.
type FutureDate struct {
	core[time.Time]
	dates[int]
}

// NewFutureDate decomposes the bound time into wheels and starts following
// the binding.
func NewFutureDate(bound *binding.Value[time.Time], opts Options) *FutureDate {
	opts = opts.withDefaults(config.PickerFuture)

	current := opts.Clock.Now().Year()
	p := &FutureDate{
		core: core[time.Time]{bound: bound, log: opts.Logger},
		dates: dates[int]{
			Year:     newWheel(descending(current+opts.CountYears, current), current),
			Month:    newWheel(intRange(1, config.MonthsPerYear), 1),
			Day:      newWheel([]int{1}, 1),
			resolver: opts.Resolver,
			year:     calendar.Known,
		},
	}
	p.decompose(bound.Get())
	p.watch(p.decompose)
	return p
}

func (p *FutureDate) decompose(t time.Time) {
	f := calendar.FieldsOf(t)
	p.setFrom(f.Year, f.Month, f.Day)
}

// SelectYear handles a scroll on the year wheel.
func (p *FutureDate) SelectYear(y int) {
	if !p.Year.Contains(y) {
		p.ignored(KindYear.String(), y)
		return
	}
	p.Year.set(y)
	p.rederive(p.log)
	p.commit()
}

// SelectMonth handles a scroll on the month wheel.
func (p *FutureDate) SelectMonth(m int) {
	if !p.Month.Contains(m) {
		p.ignored(KindMonth.String(), m)
		return
	}
	p.Month.set(m)
	p.rederive(p.log)
	p.commit()
}

// SelectDay handles a scroll on the day wheel.
func (p *FutureDate) SelectDay(d int) {
	if !p.Day.Contains(d) {
		p.ignored(KindDay.String(), d)
		return
	}
	p.Day.set(d)
	p.commit()
}

// Appear re-derives the day wheel and writes the result back.
func (p *FutureDate) Appear() {
	p.rederive(p.log)
	p.commit()
}

// commit writes the selected date with the bound clock time. An
// unrepresentable result leaves the binding untouched.
func (p *FutureDate) commit() {
	cur := p.bound.Get()
	f := calendar.FieldsOf(cur)
	y, m, d := p.Year.Selected(), p.Month.Selected(), p.Day.Selected()

	t, ok := calendar.Compose(cur.Location(), y, m, d, f.Hour, f.Minute, f.Second)
	if !ok {
		p.log.Debug(config.MsgComposeSkipped,
			config.LogKeyYear, y,
			config.LogKeyMonth, m,
			config.LogKeyDay, d,
		)
		return
	}
	p.write(t)
}

// Columns projects the wheels left to right in locale order.
func (p *FutureDate) Columns(labels locale.Labels) []Column {
	return p.columns(labels, strconv.Itoa, p.SelectYear, p.SelectMonth, p.SelectDay)
}
