package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/config"
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

var now = MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

type fixture struct {
	model    Model
	birthday *binding.Value[birthday.Date]
	timer    *binding.Value[time.Time]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	opts := picker.Options{
		CountYears: 10,
		Clock:      now,
		Resolver:   locale.NewResolver(locale.FixedFormat("dd.MM.yyyy")),
	}

	bday := binding.New[birthday.Date](birthday.MonthDay{Month: 1, Day: 31})
	clock := binding.New(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC))

	bp := picker.NewBirthday(bday, opts)
	tp := picker.NewTimer(clock, picker.Hours24, opts)
	t.Cleanup(bp.Close)
	t.Cleanup(tp.Close)

	m := New([]Panel{
		{Name: config.PickerBirthday, Title: "Birthday", Model: bp, Describe: func() string { return bday.Get().String() }},
		{Name: config.PickerTimer, Title: "Time", Model: tp},
	}, config.PickerBirthday, nil, DefaultStyle())
	m.Init()

	return fixture{model: m, birthday: bday, timer: clock}
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_DayWheelWraps(t *testing.T) {
	f := newFixture(t)

	m := press(f.model, keyDown)
	assert.Equal(t, birthday.MonthDay{Month: 1, Day: 1}, f.birthday.Get(), "the day wheel wraps past the last day")

	m = press(m, keyUp)
	assert.Equal(t, birthday.MonthDay{Month: 1, Day: 31}, f.birthday.Get())

	press(m, keyUp, runes("k"))
	assert.Equal(t, birthday.MonthDay{Month: 1, Day: 29}, f.birthday.Get())
}

func TestModel_MonthWheelWraps(t *testing.T) {
	f := newFixture(t)

	m := press(f.model, keyRight)
	assert.Equal(t, 1, m.Focus())

	m = press(m, keyUp)
	assert.Equal(t, birthday.MonthDay{Month: 12, Day: 31}, f.birthday.Get())

	press(m, keyDown, keyDown)
	assert.Equal(t, birthday.MonthDay{Month: 2, Day: 29}, f.birthday.Get(), "the day is clamped to the month")
}

func TestModel_YearWheel(t *testing.T) {
	f := newFixture(t)

	m := press(f.model, keyRight, keyRight, keyRight)
	assert.Equal(t, 2, m.Focus(), "focus stops at the last wheel")

	m = press(m, keyDown)
	assert.Equal(t, birthday.FullDate{Year: 2025, Month: 1, Day: 31}, f.birthday.Get())

	press(m, keyUp, keyUp)
	assert.Equal(t, birthday.MonthDay{Month: 1, Day: 31}, f.birthday.Get(), "the year wheel stops on the unknown entry")

	m = press(m, keyLeft, keyLeft, keyLeft)
	assert.Zero(t, m.Focus())
}

func TestModel_SwitchPanel(t *testing.T) {
	f := newFixture(t)

	m := press(f.model, keyRight, keyTab)
	assert.Equal(t, config.PickerTimer, m.Active())
	assert.Zero(t, m.Focus(), "switching panels resets the focus")

	cols := m.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, picker.KindHour, cols[0].Kind)

	// Hours wrap from 23 to 0 and keep the minute.
	press(m, keyDown)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 59, 0, 0, time.UTC), f.timer.Get())

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, config.PickerBirthday, m.Active())

	m = press(m, keyTab, keyTab)
	assert.Equal(t, config.PickerBirthday, m.Active(), "tab cycles")
}

func TestModel_Quit(t *testing.T) {
	f := newFixture(t)

	next, cmd := f.model.Update(runes("q"))
	m := next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	f := newFixture(t)
	m := f.model.WithTitle("Go Datewheel")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(Model).View()

	assert.Contains(t, view, "Go Datewheel")
	assert.Contains(t, view, "Birthday")
	assert.Contains(t, view, "Time")
	assert.Contains(t, view, "January")
	assert.Contains(t, view, "--01-31")
	assert.Contains(t, view, config.TUIDivider)

	m = press(m, runes("?"))
	assert.Contains(t, m.View(), "next picker", "full help lists the panel keys")
}

func TestModel_FirstPanel(t *testing.T) {
	f := newFixture(t)
	m := New(f.model.panels, config.PickerTimer, locale.DefaultLabels{}, DefaultStyle())
	assert.Equal(t, config.PickerTimer, m.Active())

	empty := New(nil, "", nil, DefaultStyle())
	assert.Empty(t, empty.Active())
	assert.Nil(t, empty.Columns())
	empty = press(empty, keyDown, keyTab, keyRight)
	assert.Zero(t, empty.Focus())
}

func TestWindow(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f"}

	tests := []struct {
		name string
		col  picker.Column
		want []int
	}{
		{"Middle", picker.Column{Labels: labels, Selected: 3}, []int{1, 2, 3, 4, 5}},
		{"Top edge", picker.Column{Labels: labels, Selected: 0}, []int{-1, -1, 0, 1, 2}},
		{"Circular top", picker.Column{Labels: labels, Selected: 0, Circular: true}, []int{4, 5, 0, 1, 2}},
		{"Circular bottom", picker.Column{Labels: labels, Selected: 5, Circular: true}, []int{3, 4, 5, 0, 1}},
		{"Short circular", picker.Column{Labels: labels[:2], Selected: 0, Circular: true}, []int{-1, -1, 0, 1, -1}},
		{"No selection", picker.Column{Labels: labels, Selected: -1}, []int{-1, -1, -1, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window(tt.col, 5))
		})
	}
}

func TestRenderColumns_Divider(t *testing.T) {
	cols := []picker.Column{
		{Labels: []string{"1", "2"}, Selected: 0},
		{Labels: []string{"x"}, Selected: 0},
	}

	s := DefaultStyle()
	assert.Contains(t, renderColumns(cols, 0, s), config.TUIDivider)

	s.Divider = false
	out := renderColumns(cols, 0, s)
	assert.NotContains(t, out, config.TUIDivider)
	assert.Len(t, strings.Split(out, "\n"), s.Rows)
}
