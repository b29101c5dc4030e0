package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// GoDatewheelApp is the demo shell: one tab per picker, a summary of the
// bound values and a settings card.
type GoDatewheelApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Catalog     *locale.Catalog
	Resolver    *locale.Resolver
	Ctx         context.Context
	Clock       calendar.Clock // Injected clock for testability

	// Bound values edited by the pickers.
	Birthday *binding.Value[birthday.Date]
	Future   *binding.Value[time.Time]
	Time     *binding.Value[time.Time]

	WheelConfig WheelConfig

	Views   map[string]*PickerView
	Tabs    *container.AppTabs
	Summary *widget.Label

	settings    *settingsWidgets
	unsubscribe []func()
}

// NewGoDatewheelApp constructs the application. The bound values start at
// today's date and time.
func NewGoDatewheelApp(a fyne.App, ctx context.Context) *GoDatewheelApp {
	now := time.Now()
	return &GoDatewheelApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Clock:       calendar.RealClock{},
		Birthday:    binding.New[birthday.Date](birthday.MonthDay{Month: int(now.Month()), Day: now.Day()}),
		Future:      binding.New(now),
		Time:        binding.New(now),
		WheelConfig: DefaultWheelConfig(),
	}
}

// Run opens the main window and blocks until it is closed.
func (app *GoDatewheelApp) Run() {
	if err := app.SetupI18n(); err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
	}

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(app.BuildContent())
	app.Window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.Window.SetOnClosed(app.teardown)
	app.Window.Show()

	app.App.Run()
}

// CountYears returns the configured year span, clamped to the settings
// limits.
func (app *GoDatewheelApp) CountYears() int {
	n := app.Preferences.IntWithFallback(config.PrefYears, config.DefaultCountYears)
	return min(max(n, config.MinCountYears), config.MaxCountYears)
}

// Format returns the configured hour cycle.
func (app *GoDatewheelApp) Format() picker.Format {
	f, err := picker.ParseFormat(app.Preferences.StringWithFallback(config.PrefFormat, config.Format24))
	if err != nil {
		slog.Warn(config.ErrFormatName,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
	}
	return f
}

// BuildContent builds the picker tabs, the summary and the settings card.
// Calling it again discards the previous pickers.
func (app *GoDatewheelApp) BuildContent() fyne.CanvasObject {
	app.teardown()

	opts := picker.Options{
		CountYears: app.CountYears(),
		Clock:      app.Clock,
		Resolver:   app.Resolver,
	}
	labels := app.labels()

	app.Views = map[string]*PickerView{
		config.PickerBirthday: follow(NewPickerView(picker.NewBirthday(app.Birthday, opts), app.WheelConfig, labels), app.Birthday),
		config.PickerFuture:   follow(NewPickerView(picker.NewFutureDate(app.Future, opts), app.WheelConfig, labels), app.Future),
		config.PickerTimer:    follow(NewPickerView(picker.NewTimer(app.Time, app.Format(), opts), app.WheelConfig, labels), app.Time),
	}

	app.Tabs = container.NewAppTabs(
		container.NewTabItem(app.GetMsg(config.TKeyTabBirthday), app.Views[config.PickerBirthday]),
		container.NewTabItem(app.GetMsg(config.TKeyTabFuture), app.Views[config.PickerFuture]),
		container.NewTabItem(app.GetMsg(config.TKeyTabTimer), app.Views[config.PickerTimer]),
	)
	panels := []string{config.PickerBirthday, config.PickerFuture, config.PickerTimer}
	last := app.Preferences.StringWithFallback(config.PrefLastPanel, config.PickerBirthday)
	for i, p := range panels {
		if p == last {
			app.Tabs.SelectIndex(i)
		}
	}
	app.Tabs.OnSelected = func(*container.TabItem) {
		app.Preferences.SetString(config.PrefLastPanel, panels[app.Tabs.SelectedIndex()])
	}

	app.Summary = widget.NewLabel("")
	app.Summary.Alignment = fyne.TextAlignCenter
	app.unsubscribe = append(app.unsubscribe,
		app.Birthday.Subscribe(func(birthday.Date) { app.refreshSummary() }),
		app.Future.Subscribe(func(time.Time) { app.refreshSummary() }),
		app.Time.Subscribe(func(time.Time) { app.refreshSummary() }),
	)
	app.refreshSummary()

	footer := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewPadded(container.NewBorder(
		nil,
		container.NewVBox(app.Summary, app.buildSettingsCard(), footer),
		nil, nil,
		app.Tabs,
	))
}

// SummaryText describes the three bound values.
func (app *GoDatewheelApp) SummaryText() string {
	return fmt.Sprintf(config.FormatSummary,
		app.GetMsg(config.TKeyLblSelected),
		app.Birthday.Get(),
		app.Future.Get().Format(config.DateFormatDisplay),
		app.Time.Get().Format(config.FormatTimeOfDay),
	)
}

func (app *GoDatewheelApp) refreshSummary() {
	if app.Summary != nil {
		app.Summary.SetText(app.SummaryText())
	}
}

// labels returns the catalog, or English labels when it failed to load.
func (app *GoDatewheelApp) labels() locale.Labels {
	if app.Catalog == nil {
		return locale.DefaultLabels{}
	}
	return app.Catalog
}

// teardown detaches every picker and summary listener from the bindings.
func (app *GoDatewheelApp) teardown() {
	for _, v := range app.Views {
		v.Close()
	}
	app.Views = nil
	for _, cancel := range app.unsubscribe {
		cancel()
	}
	app.unsubscribe = nil
}
