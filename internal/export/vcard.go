// Package export moves picker values in and out of the host formats:
// vCard birthdays (BDAY) and iCalendar events.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/calendar"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// Contact is the part of a vCard the birthday picker edits.
type Contact struct {
	Name     string
	Birthday birthday.Date
	// Card is the decoded vCard, kept so ApplyBirthday can write back.
	Card vcard.Card
}

// LoadCard opens path and reads the first contact with a birthday.
func LoadCard(ctx context.Context, path string) (Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return Contact{}, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = f.Close() }()

	return BirthdayFromCard(ctx, f)
}

// BirthdayFromCard decodes the vCard stream and returns the first card
// whose BDAY parses. Malformed cards and unparsable dates are skipped.
func BirthdayFromCard(ctx context.Context, r io.Reader) (Contact, error) {
	log := slog.With(config.LogKeyComponent, config.CompExport)
	decoder := vcard.NewDecoder(r)

	for {
		if ctx.Err() != nil {
			return Contact{}, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Contact{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		d, err := ParseBirthday(bday.Value)
		if err != nil {
			log.Debug(config.ErrDateParse, config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.DefaultContactName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		log.Info(config.MsgSeedLoaded,
			config.LogKeyValue, d.String(),
		)
		return Contact{Name: name, Birthday: d, Card: card}, nil
	}

	return Contact{}, errors.New(config.ErrVCardNoBDAY)
}

// ParseBirthday reads a vCard date value. Truncated dates without a year
// ("--0412", "--04-12") become a MonthDay; the day is checked against the
// reference leap year so February 29 is accepted.
func ParseBirthday(value string) (birthday.Date, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return birthday.FullDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		t, err := time.Parse(f, value)
		if err != nil {
			continue
		}
		if _, ok := calendar.ComposeDate(time.UTC, config.ReferenceLeapYear, int(t.Month()), t.Day()); !ok {
			break
		}
		return birthday.MonthDay{Month: int(t.Month()), Day: t.Day()}, nil
	}

	return nil, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}

// FormatBirthday renders d as a vCard 4 date: "--MMDD" without a year,
// "YYYY-MM-DD" otherwise.
func FormatBirthday(d birthday.Date) string {
	year, month, day := d.Components()
	if y, ok := year.Get(); ok {
		return fmt.Sprintf(config.FormatVCardFull, y, month, day)
	}
	return fmt.Sprintf(config.FormatVCardNoYear, month, day)
}

// ApplyBirthday stores d as the BDAY of card.
func ApplyBirthday(card vcard.Card, d birthday.Date) {
	card.SetValue(config.VCardBDAY, FormatBirthday(d))
}

// NewCard builds a minimal vCard 4 for name born on d.
func NewCard(name string, d birthday.Date) vcard.Card {
	card := vcard.Card{}
	card.SetValue(config.VCardFN, name)
	ApplyBirthday(card, d)
	vcard.ToV4(card)
	return card
}

// WriteCard encodes card to w as vCard 4.
func WriteCard(w io.Writer, card vcard.Card) error {
	vcard.ToV4(card)
	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return nil
}
