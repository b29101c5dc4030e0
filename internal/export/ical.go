package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// EventFor builds a VEVENT starting at start. The clock stamps the event
// and seeds its UID. An empty summary uses config.DefaultEventName.
func EventFor(summary string, start time.Time, clock calendar.Clock) *ical.Event {
	now := clock.Now()
	if summary == "" {
		summary = config.DefaultEventName
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID,
		start.UTC().Format(config.UIDLayout),
		now.UTC().Format(config.UIDLayout),
		config.ICalDomain,
	))
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDateTime(start.UTC())
	event.Props.Set(dtStart)

	return event
}

// EncodeEvent wraps event in a VCALENDAR and writes it to w.
func EncodeEvent(w io.Writer, event *ical.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	slog.Debug(config.MsgEventEncoded,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyValue, event.Props.Get(config.PropUID).Value,
	)
	return nil
}
