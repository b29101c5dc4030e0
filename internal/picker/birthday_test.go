package picker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/locale"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// Reference "Now": June 15th, 2025.
var now = MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

func kinds(cols []picker.Column) []picker.Kind {
	out := make([]picker.Kind, len(cols))
	for i, c := range cols {
		out[i] = c.Kind
	}
	return out
}

func find(t *testing.T, cols []picker.Column, k picker.Kind) picker.Column {
	t.Helper()
	for _, c := range cols {
		if c.Kind == k {
			return c
		}
	}
	require.Failf(t, "column missing", "no %s column", k)
	return picker.Column{}
}

func TestBirthday_YearCandidates(t *testing.T) {
	b := binding.New[birthday.Date](birthday.MonthDay{Month: 1, Day: 1})
	p := picker.NewBirthday(b, picker.Options{CountYears: 3, Clock: now})

	assert.Equal(t, []calendar.Year{
		calendar.UnknownYear,
		calendar.Known(2025),
		calendar.Known(2024),
		calendar.Known(2023),
		calendar.Known(2022),
	}, p.Year.Items())

	def := picker.NewBirthday(b, picker.Options{Clock: now})
	assert.Equal(t, 122, def.Year.Len(), "default span is 120 years plus the current one and the unknown entry")
}

func TestBirthday_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input birthday.Date
	}{
		{"Full date", birthday.FullDate{Year: 1990, Month: 5, Day: 17}},
		{"No year", birthday.MonthDay{Month: 11, Day: 3}},
		{"Leap day without year", birthday.MonthDay{Month: 2, Day: 29}},
		{"Leap day in leap year", birthday.FullDate{Year: 2000, Month: 2, Day: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := binding.New(tt.input)
			p := picker.NewBirthday(b, picker.Options{Clock: now})

			assert.Equal(t, picker.Ready, p.State())
			assert.Equal(t, tt.input, p.Value())

			p.Appear()
			assert.Equal(t, tt.input, b.Get(), "a valid birthday survives appear unchanged")
		})
	}
}

func TestBirthday_ClampToLastDay(t *testing.T) {
	tests := []struct {
		name     string
		start    birthday.Date
		apply    func(p *picker.Birthday)
		want     birthday.Date
		wantDays int
	}{
		{
			name:     "January 31 to February in a common year",
			start:    birthday.FullDate{Year: 2023, Month: 1, Day: 31},
			apply:    func(p *picker.Birthday) { p.SelectMonth(2) },
			want:     birthday.FullDate{Year: 2023, Month: 2, Day: 28},
			wantDays: 28,
		},
		{
			name:     "January 31 to February in a leap year",
			start:    birthday.FullDate{Year: 2024, Month: 1, Day: 31},
			apply:    func(p *picker.Birthday) { p.SelectMonth(2) },
			want:     birthday.FullDate{Year: 2024, Month: 2, Day: 29},
			wantDays: 29,
		},
		{
			name:     "March 31 to April",
			start:    birthday.MonthDay{Month: 3, Day: 31},
			apply:    func(p *picker.Birthday) { p.SelectMonth(4) },
			want:     birthday.MonthDay{Month: 4, Day: 30},
			wantDays: 30,
		},
		{
			name:     "Leap day loses its year",
			start:    birthday.FullDate{Year: 2024, Month: 2, Day: 29},
			apply:    func(p *picker.Birthday) { p.SelectYear(calendar.UnknownYear) },
			want:     birthday.MonthDay{Month: 2, Day: 29},
			wantDays: 29,
		},
		{
			name:     "Leap day without year gets a common year",
			start:    birthday.MonthDay{Month: 2, Day: 29},
			apply:    func(p *picker.Birthday) { p.SelectYear(calendar.Known(2023)) },
			want:     birthday.FullDate{Year: 2023, Month: 2, Day: 28},
			wantDays: 28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := binding.New(tt.start)
			p := picker.NewBirthday(b, picker.Options{Clock: now})

			tt.apply(p)

			assert.Equal(t, tt.want, b.Get())
			assert.Equal(t, tt.wantDays, p.Day.Len())
			assert.Equal(t, tt.wantDays, p.Day.Key())
		})
	}
}

func TestBirthday_UnknownYearOffersLeapDay(t *testing.T) {
	b := binding.New[birthday.Date](birthday.MonthDay{Month: 2, Day: 1})
	p := picker.NewBirthday(b, picker.Options{Clock: now})

	assert.Equal(t, 29, p.Day.Len())
	p.SelectDay(29)
	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, b.Get())
}

func TestBirthday_IgnoresSelectionsOutsideCandidates(t *testing.T) {
	start := birthday.FullDate{Year: 2023, Month: 2, Day: 10}
	b := binding.New[birthday.Date](start)
	p := picker.NewBirthday(b, picker.Options{CountYears: 10, Clock: now})

	writes := 0
	b.Subscribe(func(birthday.Date) { writes++ })

	p.SelectDay(30)
	p.SelectMonth(13)
	p.SelectYear(calendar.Known(1800))

	assert.Equal(t, start, b.Get())
	assert.Zero(t, writes)
}

func TestBirthday_FollowsExternalChanges(t *testing.T) {
	b := binding.New[birthday.Date](birthday.MonthDay{Month: 1, Day: 1})
	p := picker.NewBirthday(b, picker.Options{Clock: now})

	b.Set(birthday.FullDate{Year: 2000, Month: 2, Day: 29})

	assert.Equal(t, calendar.Known(2000), p.Year.Selected())
	assert.Equal(t, 2, p.Month.Selected())
	assert.Equal(t, 29, p.Day.Selected())
	assert.Equal(t, 29, p.Day.Len())
	assert.Equal(t, picker.Ready, p.State())

	p.Close()
	b.Set(birthday.MonthDay{Month: 7, Day: 4})
	assert.Equal(t, 2, p.Month.Selected(), "a closed picker stops following")
	assert.Zero(t, b.Listeners())
}

func TestBirthday_AppearIsIdempotent(t *testing.T) {
	// February 31 is not a birthday; the wheels clamp it on load.
	b := binding.New[birthday.Date](birthday.MonthDay{Month: 2, Day: 31})
	p := picker.NewBirthday(b, picker.Options{Clock: now})
	assert.Equal(t, 29, p.Day.Selected())

	var seen []birthday.Date
	b.Subscribe(func(d birthday.Date) { seen = append(seen, d) })

	p.Appear()
	first := b.Get()
	p.Appear()

	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, first)
	assert.Equal(t, first, b.Get())
	assert.Equal(t, []birthday.Date{first, first}, seen)
}

func TestBirthday_NilValueReadsAsJanuaryFirst(t *testing.T) {
	b := binding.New[birthday.Date](nil)
	p := picker.NewBirthday(b, picker.Options{Clock: now})

	assert.Equal(t, birthday.MonthDay{Month: 1, Day: 1}, p.Value())
}

func TestBirthday_ColumnOrder(t *testing.T) {
	tests := []struct {
		name     string
		resolver *locale.Resolver
		want     []picker.Kind
	}{
		{"German", locale.NewResolver(locale.FixedFormat("dd.MM.yyyy")), []picker.Kind{picker.KindDay, picker.KindMonth, picker.KindYear}},
		{"US", locale.NewResolver(locale.FixedFormat("M/d/yyyy")), []picker.Kind{picker.KindMonth, picker.KindDay, picker.KindYear}},
		{"Japanese", locale.NewResolver(locale.FixedFormat("yyyy/MM/dd")), []picker.Kind{picker.KindYear, picker.KindMonth, picker.KindDay}},
		{"No format", locale.NewResolver(locale.FixedFormat("")), []picker.Kind{picker.KindYear, picker.KindMonth, picker.KindDay}},
		{"No resolver", nil, []picker.Kind{picker.KindYear, picker.KindMonth, picker.KindDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := binding.New[birthday.Date](birthday.FullDate{Year: 1990, Month: 5, Day: 17})
			p := picker.NewBirthday(b, picker.Options{Clock: now, Resolver: tt.resolver})

			assert.Equal(t, tt.want, kinds(p.Columns(nil)))
		})
	}
}

func TestBirthday_Columns(t *testing.T) {
	b := binding.New[birthday.Date](birthday.MonthDay{Month: 1, Day: 31})
	p := picker.NewBirthday(b, picker.Options{CountYears: 5, Clock: now})

	cols := p.Columns(locale.DefaultLabels{})
	year := find(t, cols, picker.KindYear)
	month := find(t, cols, picker.KindMonth)
	day := find(t, cols, picker.KindDay)

	assert.Equal(t, "- - - -", year.Labels[0])
	assert.Equal(t, "2025", year.Labels[1])
	assert.Equal(t, 0, year.Selected)
	assert.False(t, year.Circular)

	assert.Equal(t, "January", month.Labels[0])
	assert.True(t, month.Circular)

	assert.Len(t, day.Labels, 31)
	assert.True(t, day.Circular)
	assert.Equal(t, 30, day.Selected)
	assert.Equal(t, 31, day.Key)

	// Scrolling the month column to February clamps the day.
	month.Select(1)
	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, b.Get())

	day = find(t, p.Columns(nil), picker.KindDay)
	assert.Equal(t, 29, day.Key, "the day column is remounted")
	assert.Equal(t, 28, day.Selected)

	// Out of range indexes from a renderer are dropped.
	day.Select(99)
	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, b.Get())
}
