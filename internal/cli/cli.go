// Package cli holds the command line plumbing shared by the desktop and
// terminal front ends: flags, logging, vCard seeding and printing the
// selected values on exit.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/export"
	"github.com/tartampluch/go-datewheel/internal/feed"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// -----------------------------------------------------------------------------
// Flags
// -----------------------------------------------------------------------------

// Options are the parsed command line flags.
type Options struct {
	Version bool
	Debug   bool
	Lang    string
	Years   int
	Format  picker.Format
	Picker  string
	VCard   string
	Print   bool
	Serve   string

	// set records which flags were given explicitly.
	set map[string]bool
}

// Pickers lists the accepted -picker values in tab order.
var Pickers = []string{config.PickerBirthday, config.PickerFuture, config.PickerTimer}

// Parse reads the flags in args (without the program name).
func Parse(name string, args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o Options
	var format string
	fs.BoolVar(&o.Version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&o.Debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&o.Lang, config.FlagLang, "", config.FlagDescLang)
	fs.IntVar(&o.Years, config.FlagYears, config.DefaultCountYears, config.FlagDescYears)
	fs.StringVar(&format, config.FlagFormat, config.Format24, config.FlagDescFormat)
	fs.StringVar(&o.Picker, config.FlagPicker, config.PickerBirthday, config.FlagDescPicker)
	fs.StringVar(&o.VCard, config.FlagVCard, "", config.FlagDescVCard)
	fs.BoolVar(&o.Print, config.FlagPrint, false, config.FlagDescPrint)
	fs.StringVar(&o.Serve, config.FlagServe, "", config.FlagDescServe)

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%s: %w", config.ErrFlagParse, err)
	}

	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	f, err := picker.ParseFormat(format)
	if err != nil {
		return Options{}, err
	}
	o.Format = f

	if !slices.Contains(Pickers, o.Picker) {
		return Options{}, fmt.Errorf("%s: %q", config.ErrPickerName, o.Picker)
	}
	if o.Years < config.MinCountYears || o.Years > config.MaxCountYears {
		return Options{}, fmt.Errorf("%s: %d not in [%d, %d]",
			config.ErrYearsFlag, o.Years, config.MinCountYears, config.MaxCountYears)
	}
	return o, nil
}

// IsSet reports whether the named flag was given on the command line.
func (o Options) IsSet(name string) bool {
	return o.set[name]
}

// Preferences is the subset of fyne.Preferences the flags are stored in.
type Preferences interface {
	SetString(key, value string)
	SetInt(key string, value int)
}

// Store writes the explicitly given flags into p so they override the
// saved settings.
func (o Options) Store(p Preferences) {
	if o.IsSet(config.FlagLang) {
		p.SetString(config.PrefLanguage, o.Lang)
	}
	if o.IsSet(config.FlagFormat) {
		p.SetString(config.PrefFormat, o.Format.String())
	}
	if o.IsSet(config.FlagYears) {
		p.SetInt(config.PrefYears, o.Years)
	}
	if o.IsSet(config.FlagPicker) {
		p.SetString(config.PrefLastPanel, o.Picker)
	}
}

// -----------------------------------------------------------------------------
// Values
// -----------------------------------------------------------------------------

// Values are the three bound values edited by the pickers.
type Values struct {
	Contact string
	// Card is the seeded contact; Print writes the birthday back into it.
	Card     vcard.Card
	Birthday *binding.Value[birthday.Date]
	Future   *binding.Value[time.Time]
	Time     *binding.Value[time.Time]
}

// NewValues starts every picker at now.
func NewValues(now time.Time) Values {
	return Values{
		Contact:  config.DefaultContactName,
		Birthday: binding.New[birthday.Date](birthday.MonthDay{Month: int(now.Month()), Day: now.Day()}),
		Future:   binding.New(now),
		Time:     binding.New(now),
	}
}

// Seed loads the first birthday of the vCard at path into v.
func (v *Values) Seed(ctx context.Context, path string) error {
	c, err := export.LoadCard(ctx, path)
	if err != nil {
		return err
	}
	v.Contact = c.Name
	v.Card = c.Card
	v.Birthday.Set(c.Birthday)

	slog.Info(config.MsgSeedLoaded,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPath, path,
		config.LogKeyValue, export.FormatBirthday(c.Birthday),
	)
	return nil
}

// Reminder combines the future date with the time of day picked on the
// timer, in the future date's location.
func (v Values) Reminder() (time.Time, bool) {
	d, t := v.Future.Get(), v.Time.Get()
	return calendar.Compose(d.Location(), d.Year(), int(d.Month()), d.Day(), t.Hour(), t.Minute(), 0)
}

// Publish keeps srv serving the current reminder until the returned
// cancel is called.
func (v Values) Publish(srv *feed.Server, clock calendar.Clock) (cancel func()) {
	publish := func(time.Time) {
		start, ok := v.Reminder()
		if !ok {
			return
		}
		if err := srv.Publish(export.EventFor("", start, clock)); err != nil {
			slog.Error(config.ErrICalEncode,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyError, err,
			)
		}
	}
	publish(time.Time{})

	stopFuture := v.Future.Subscribe(publish)
	stopTime := v.Time.Subscribe(publish)
	return func() {
		stopFuture()
		stopTime()
	}
}

// Serve starts the reminder feed when -serve is set and returns a stop
// function waiting for it to shut down.
func (v Values) Serve(ctx context.Context, port string, clock calendar.Clock) (stop func()) {
	if port == "" {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	srv := feed.NewServer(port)
	unpublish := v.Publish(srv, clock)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := srv.Start(ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyError, err,
			)
		}
	}()

	return func() {
		unpublish()
		cancel()
		<-done
	}
}

// Print writes the birthday as a vCard and the reminder as an iCalendar
// event. A seeded card keeps its other properties.
func (v Values) Print(w io.Writer, clock calendar.Clock) error {
	card := v.Card
	if card == nil {
		card = export.NewCard(v.Contact, v.Birthday.Get())
	} else {
		export.ApplyBirthday(card, v.Birthday.Get())
	}

	var errs []error
	if err := export.WriteCard(w, card); err != nil {
		errs = append(errs, err)
	}
	if start, ok := v.Reminder(); ok {
		if err := export.EncodeEvent(w, export.EventFor("", start, clock)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPrint, err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Logging & Build Info
// -----------------------------------------------------------------------------

// PrintVersion outputs the build information.
func PrintVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// LogStartupInfo logs environment details useful for debugging.
func LogStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// SetupLogging configures the default slog logger to write JSON to console
// (when non-nil) and to fileName in the user's cache directory.
func SetupLogging(debugMode bool, console io.Writer, fileName string) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if console != nil {
		writers = append(writers, console)
	}

	if logPath, err := LogFilePath(fileName); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// LogFilePath determines the platform-specific cache path for fileName.
func LogFilePath(fileName string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, fileName), nil
}
