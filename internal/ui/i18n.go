package ui

import (
	"log/slog"

	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
)

// SetupI18n loads the translation catalog in the preferred language, or
// the host locale when no preference is stored, and wires the order
// resolver to it.
func (app *GoDatewheelApp) SetupI18n() error {
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = locale.HostLocale()
	}

	catalog, err := locale.NewCatalog(lang)
	if err != nil {
		return err
	}
	app.Catalog = catalog
	app.Resolver = &locale.Resolver{
		Provider: catalog,
		Logger:   slog.With(config.LogKeyComponent, config.CompUI),
	}
	return nil
}

// UpdateLocalizer applies the language preference to the catalog and lays
// the pickers out again.
func (app *GoDatewheelApp) UpdateLocalizer() error {
	if app.Catalog == nil {
		return app.SetupI18n()
	}
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLocale
	}
	if err := app.Catalog.SetLanguage(lang); err != nil {
		return err
	}
	for _, v := range app.Views {
		v.SetLabels(app.Catalog)
	}
	return nil
}

// SupportedLanguages lists the languages offered in settings.
func (app *GoDatewheelApp) SupportedLanguages() []string {
	if app.Catalog == nil {
		return []string{config.DefaultLanguage}
	}
	return app.Catalog.Languages()
}

// GetMsg is a helper to translate a key safely.
func (app *GoDatewheelApp) GetMsg(key string) string {
	if app.Catalog == nil {
		return key
	}
	return app.Catalog.Msg(key)
}
