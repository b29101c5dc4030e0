package ui

import (
	"log/slog"
	"slices"
	"strconv"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	formatSelect *widget.Select
	entryYears   *NumericalEntry
	btnApply     *widget.Button
}

// buildSettingsCard constructs the language, clock format and year span
// controls.
func (app *GoDatewheelApp) buildSettingsCard() *widget.Card {
	sw := &settingsWidgets{}
	app.settings = sw

	// --- 1. Language ---
	langs := app.SupportedLanguages()
	sw.langSelect = widget.NewSelect(langs, nil)
	current := app.Preferences.String(config.PrefLanguage)
	if current == "" && app.Catalog != nil {
		current = app.Catalog.Language().String()
	}
	if !slices.Contains(langs, current) && app.Catalog != nil {
		// The host locale may be a region of a bundled language.
		base, _ := app.Catalog.Language().Base()
		current = base.String()
	}
	sw.langSelect.SetSelected(current)

	// --- 2. Clock format ---
	sw.formatSelect = widget.NewSelect([]string{
		app.GetMsg(config.TKeyFormat24),
		app.GetMsg(config.TKeyFormat12),
	}, nil)
	if app.Format() == picker.Hours12 {
		sw.formatSelect.SetSelected(app.GetMsg(config.TKeyFormat12))
	} else {
		sw.formatSelect.SetSelected(app.GetMsg(config.TKeyFormat24))
	}

	// --- 3. Year span ---
	// Numerical only, with strict validation (range 1-500).
	sw.entryYears = NewRangeEntry(config.MinCountYears, config.MaxCountYears,
		func() string { return app.GetMsg(config.TKeyErrYearsReq) },
		func() string { return app.GetMsg(config.TKeyErrYearsRange) },
	)
	sw.entryYears.SetText(strconv.Itoa(app.CountYears()))

	itemYears := widget.NewFormItem(app.GetMsg(config.TKeyLblYears), sw.entryYears)
	itemYears.HintText = app.GetMsg(config.TKeyHelpYears)

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblFormat), sw.formatSelect),
		itemYears,
	)

	sw.btnApply = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnApply), theme.ConfirmIcon(), func() {
		if err := app.saveSettings(sw); err != nil && app.Window != nil {
			dialog.ShowError(err, app.Window)
		}
	})
	sw.btnApply.Importance = widget.HighImportance
	form.Append("", sw.btnApply)

	return widget.NewCard(app.GetMsg(config.TKeyLblSettings), "", form)
}

// saveSettings persists the settings and rebuilds the pickers so the new
// locale order, hour cycle and year span take effect.
func (app *GoDatewheelApp) saveSettings(sw *settingsWidgets) error {
	// Only the year span has a strict requirement that blocks saving if invalid.
	if err := sw.entryYears.Validate(); err != nil {
		return err
	}
	years, _ := sw.entryYears.Int()

	format := config.Format24
	if sw.formatSelect.Selected == app.GetMsg(config.TKeyFormat12) {
		format = config.Format12
	}

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefFormat, format)
	app.Preferences.SetInt(config.PrefYears, years)

	if err := app.UpdateLocalizer(); err != nil {
		return err
	}

	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, sw.langSelect.Selected,
		config.LogKeyFormat, format,
		config.LogKeyCount, years,
	)

	content := app.BuildContent()
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
		app.Window.SetContent(content)
	}
	return nil
}
