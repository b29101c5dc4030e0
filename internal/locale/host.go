package locale

import (
	"log/slog"

	golocale "github.com/jeandeaual/go-locale"
	"github.com/tartampluch/go-datewheel/internal/config"
	"golang.org/x/text/language"
)

// detect is swapped in tests.
var detect = golocale.GetLocale

// HostLocale returns the BCP 47 tag of the user's locale, or
// config.DefaultLocale when it cannot be determined (for example the POSIX
// "C" locale).
func HostLocale() string {
	log := slog.With(config.LogKeyComponent, config.CompLocale)

	raw, err := detect()
	if err != nil || raw == "" {
		log.Debug(config.ErrHostLocale, config.LogKeyError, err)
		return config.DefaultLocale
	}

	tag, err := language.Parse(normalizeTag(raw))
	if err != nil || tag == language.Und {
		log.Debug(config.ErrHostLocale,
			config.LogKeyValue, raw,
			config.LogKeyError, err,
		)
		return config.DefaultLocale
	}
	return tag.String()
}
