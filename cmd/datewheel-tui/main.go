package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/cli"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
	"github.com/tartampluch/go-datewheel/internal/picker"
	"github.com/tartampluch/go-datewheel/internal/tui"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	opts, err := cli.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	if opts.Version {
		cli.PrintVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	// The terminal belongs to the program, so logs only go to the file.
	logCloser := cli.SetupLogging(opts.Debug, nil, config.TUILogFileName)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.LogStartupInfo()

	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

func run(ctx context.Context, opts cli.Options) error {
	lang := opts.Lang
	if lang == "" {
		lang = locale.HostLocale()
	}
	catalog, err := locale.NewCatalog(lang)
	if err != nil {
		return err
	}

	clock := calendar.RealClock{}
	values := cli.NewValues(clock.Now())
	if opts.VCard != "" {
		if err := values.Seed(ctx, opts.VCard); err != nil {
			return err
		}
	}

	po := picker.Options{
		CountYears: opts.Years,
		Clock:      clock,
		Resolver: &locale.Resolver{
			Provider: catalog,
			Logger:   slog.With(config.LogKeyComponent, config.CompTUI),
		},
	}
	stopFeed := values.Serve(ctx, opts.Serve, clock)
	defer stopFeed()

	bp := picker.NewBirthday(values.Birthday, po)
	fp := picker.NewFutureDate(values.Future, po)
	tp := picker.NewTimer(values.Time, opts.Format, po)
	defer bp.Close()
	defer fp.Close()
	defer tp.Close()

	model := tui.New([]tui.Panel{
		{
			Name: config.PickerBirthday, Title: catalog.Msg(config.TKeyTabBirthday), Model: bp,
			Describe: func() string { return values.Birthday.Get().String() },
		},
		{
			Name: config.PickerFuture, Title: catalog.Msg(config.TKeyTabFuture), Model: fp,
			Describe: func() string { return values.Future.Get().Format(config.DateFormatDisplay) },
		},
		{
			Name: config.PickerTimer, Title: catalog.Msg(config.TKeyTabTimer), Model: tp,
			Describe: func() string { return tp.TimeOfDay().String() },
		},
	}, opts.Picker, catalog, tui.DefaultStyle()).WithTitle(catalog.Msg(config.TKeyWinTitle))

	if err := tui.Run(ctx, model); err != nil {
		return err
	}

	if opts.Print {
		return values.Print(os.Stdout, clock)
	}
	return nil
}
