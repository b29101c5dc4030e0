package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/birthday"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		input    string
		expected birthday.Date
		wantErr  bool
	}{
		{"1990-05-17", birthday.FullDate{Year: 1990, Month: 5, Day: 17}, false},
		{"19900517", birthday.FullDate{Year: 1990, Month: 5, Day: 17}, false},
		{"1990-05-17T00:00:00Z", birthday.FullDate{Year: 1990, Month: 5, Day: 17}, false},
		{"--0517", birthday.MonthDay{Month: 5, Day: 17}, false},
		{"--05-17", birthday.MonthDay{Month: 5, Day: 17}, false},
		{"--0229", birthday.MonthDay{Month: 2, Day: 29}, false},
		{"--0230", nil, true},
		{"2023-02-29", nil, true},
		{"invalid-date", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBirthday(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatBirthday(t *testing.T) {
	assert.Equal(t, "--0229", FormatBirthday(birthday.MonthDay{Month: 2, Day: 29}))
	assert.Equal(t, "0987-12-01", FormatBirthday(birthday.FullDate{Year: 987, Month: 12, Day: 1}))

	for _, d := range []birthday.Date{
		birthday.MonthDay{Month: 7, Day: 4},
		birthday.FullDate{Year: 2001, Month: 1, Day: 31},
	} {
		back, err := ParseBirthday(FormatBirthday(d))
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestBirthdayFromCard(t *testing.T) {
	vcfData := `BEGIN:VCARD
VERSION:3.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Bad Date
BDAY:someday
END:VCARD
BEGIN:VCARD
VERSION:3.0
N:Doe;John;;;
BDAY:--0412
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Second
BDAY:1980-01-01
END:VCARD
`
	c, err := BirthdayFromCard(context.Background(), strings.NewReader(vcfData))
	require.NoError(t, err)

	assert.Equal(t, birthday.MonthDay{Month: 4, Day: 12}, c.Birthday)
	assert.Equal(t, "Doe;John;;;", c.Name, "N is used when FN is missing")
	require.NotNil(t, c.Card)
}

func TestBirthdayFromCard_Errors(t *testing.T) {
	_, err := BirthdayFromCard(context.Background(), strings.NewReader("BEGIN:VCARD\nVERSION:3.0\nFN:A\nEND:VCARD\n"))
	assert.EqualError(t, err, "no vCard with a BDAY property")

	_, err = BirthdayFromCard(context.Background(), strings.NewReader("FN:orphan\nEND:VCARD\n"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BirthdayFromCard(ctx, strings.NewReader("BEGIN:VCARD\nVERSION:3.0\nBDAY:--0101\nEND:VCARD\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadCard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contact.vcf")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN:VCARD\nVERSION:4.0\nFN:Ada\nBDAY:18151210\nEND:VCARD\n"), 0o600))

	c, err := LoadCard(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, birthday.FullDate{Year: 1815, Month: 12, Day: 10}, c.Birthday)

	_, err = LoadCard(context.Background(), filepath.Join(dir, "missing.vcf"))
	assert.ErrorContains(t, err, "failed to open vCard file")
}

func TestCardRoundTrip(t *testing.T) {
	card := NewCard("Grace", birthday.FullDate{Year: 1906, Month: 12, Day: 9})
	ApplyBirthday(card, birthday.MonthDay{Month: 12, Day: 9})

	var buf bytes.Buffer
	require.NoError(t, WriteCard(&buf, card))
	assert.Contains(t, buf.String(), "BDAY:--1209")
	assert.Contains(t, buf.String(), "VERSION:4.0")

	decoded, err := vcard.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	assert.Equal(t, "Grace", decoded.Value(vcard.FieldFormattedName))

	c, err := BirthdayFromCard(context.Background(), strings.NewReader(mustEncode(t, decoded)))
	require.NoError(t, err)
	assert.Equal(t, birthday.MonthDay{Month: 12, Day: 9}, c.Birthday)
}

func mustEncode(t *testing.T, card vcard.Card) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCard(&buf, card))
	return buf.String()
}

func TestEventFor(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	event := EventFor("", start, clock)

	assert.Equal(t, "Reminder", event.Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "20260301T083000-20250615T100000@godatewheel", event.Props.Get(ical.PropUID).Value)

	var buf bytes.Buffer
	require.NoError(t, EncodeEvent(&buf, event))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//Go Datewheel//Export//EN")
	assert.Contains(t, out, "DTSTART:20260301T083000Z")
	assert.Contains(t, out, "DTSTAMP:20250615T100000Z")

	cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	got, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(got))
}
