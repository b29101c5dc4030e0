package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datewheel/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Labels renders the non-numeric wheel entries.
type Labels interface {
	MonthName(month int) string
	AmPm(pm bool) string
	UnknownYear() string
}

// Catalog is the translation bundle for the active locale. It provides
// the short date format template, month names and AM/PM labels, and the
// UI strings of the demo applications.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	// fallback serves the keys a partial locale file leaves out.
	fallback  *i18n.Localizer
	tag       language.Tag
	languages []string
	log       *slog.Logger
}

// NewCatalog loads the embedded locale files and activates lang.
// An empty lang activates config.DefaultLocale.
func NewCatalog(lang string) (*Catalog, error) {
	c := &Catalog{
		bundle: i18n.NewBundle(language.English),
		log:    slog.With(config.LogKeyComponent, config.CompLocale),
	}
	c.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	c.fallback = i18n.NewLocalizer(c.bundle, config.DefaultLanguage)

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
			c.log.Debug(config.MsgLocaleSkip, config.LogKeyFile, name)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
		if langCode == "" {
			c.log.Warn(config.MsgLocaleBadName, config.LogKeyFile, name)
			continue
		}

		path := config.LocaleDir + "/" + name
		if _, err := c.bundle.LoadMessageFileFS(localeFS, path); err != nil {
			c.log.Error(config.ErrLocaleLoad,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		c.languages = append(c.languages, langCode)
		c.log.Debug(config.MsgLocaleLoaded,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLocale
	}
	if err := c.SetLanguage(lang); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLanguage switches the active locale. Wheels laid out afterwards use
// the new locale's order and labels.
func (c *Catalog) SetLanguage(lang string) error {
	tag, err := language.Parse(normalizeTag(lang))
	if err != nil {
		return fmt.Errorf("%s %q: %w", config.ErrLocaleTag, lang, err)
	}

	old := c.tag
	c.tag = tag
	c.localizer = i18n.NewLocalizer(c.bundle, tag.String())

	if old != tag {
		c.log.Info(config.MsgLocaleChanged,
			config.LogKeyOld, old.String(),
			config.LogKeyNew, tag.String(),
		)
	}
	return nil
}

// Language returns the active locale tag.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Languages lists the locale codes found in the embedded files.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.languages...)
}

// Lookup translates key. Keys missing from the active locale are read
// from config.DefaultLanguage. It reports false when no locale has it.
func (c *Catalog) Lookup(key string) (string, bool) {
	if c == nil || c.localizer == nil {
		return "", false
	}
	msg, err := c.localize(key)
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		msg, err = c.fallback.Localize(&i18n.LocalizeConfig{MessageID: key})
	}
	if err != nil || msg == "" {
		c.log.Debug(config.MsgTransMissing,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

// localize reads key from the active locale only.
func (c *Catalog) localize(key string) (string, error) {
	return c.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
}

// Msg translates key, returning the key itself when it is missing.
func (c *Catalog) Msg(key string) string {
	if msg, ok := c.Lookup(key); ok {
		return msg
	}
	return key
}

// ShortDateFormat implements FormatProvider. The pattern is never borrowed
// from another locale, so a locale without one gets the fallback order.
func (c *Catalog) ShortDateFormat() (string, bool) {
	if c == nil || c.localizer == nil {
		return "", false
	}
	f, err := c.localize(config.TKeyDateFormatShort)
	if err != nil || f == "" {
		return "", false
	}
	return f, true
}

// MonthName implements Labels. Missing translations fall back to English.
func (c *Catalog) MonthName(month int) string {
	if month < 1 || month > config.MonthsPerYear {
		return fmt.Sprint(month)
	}
	if name, ok := c.Lookup(config.MonthKeys[month-1]); ok {
		return name
	}
	return time.Month(month).String()
}

// AmPm implements Labels.
func (c *Catalog) AmPm(pm bool) string {
	return amPm(c, pm)
}

// UnknownYear implements Labels.
func (c *Catalog) UnknownYear() string {
	if s, ok := c.Lookup(config.TKeyYearUnknown); ok {
		return s
	}
	return config.UnknownYearPlaceholder
}

// DefaultLabels renders English labels without a bundle.
type DefaultLabels struct{}

// MonthName implements Labels.
func (DefaultLabels) MonthName(month int) string {
	if month < 1 || month > config.MonthsPerYear {
		return fmt.Sprint(month)
	}
	return time.Month(month).String()
}

// AmPm implements Labels.
func (DefaultLabels) AmPm(pm bool) string {
	return amPm(nil, pm)
}

// UnknownYear implements Labels.
func (DefaultLabels) UnknownYear() string {
	return config.UnknownYearPlaceholder
}

// amPm translates the meridiem label through c, which may be nil.
func amPm(c *Catalog, pm bool) string {
	key, fallback := config.TKeyAM, "AM"
	if pm {
		key, fallback = config.TKeyPM, "PM"
	}
	if s, ok := c.Lookup(key); ok {
		return s
	}
	return fallback
}

// normalizeTag turns POSIX style values such as "de_DE.UTF-8@euro" into
// BCP 47 ("de-DE").
func normalizeTag(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
}
