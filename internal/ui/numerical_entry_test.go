package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	// Initialize the custom widget using Fyne's test infrastructure.
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Digit_Five", '5', true},
		{"Letter_a", 'a', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear previous content
			entry.SetText("")

			// Simulate typing
			test.Type(entry, string(tt.input))

			got := entry.Text
			if tt.accepted {
				if got != string(tt.input) {
					t.Errorf("expected input %q to be accepted, got text %q", tt.input, got)
				}
			} else {
				if got != "" {
					t.Errorf("expected input %q to be rejected, got text %q", tt.input, got)
				}
			}
		})
	}
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()

	// Verify it requests the Number keyboard on mobile devices
	if got := entry.Keyboard(); got != mobile.NumberKeyboard {
		t.Errorf("expected keyboard type %v, got %v", mobile.NumberKeyboard, got)
	}
}

// TestNumericalEntry_DirectSetText documents that SetText bypasses the
// rune filter; pasted or programmatic text is left to the Validator.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()

	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)

	_, ok := entry.Int()
	assert.False(t, ok)
}

func TestRangeEntry_Validator(t *testing.T) {
	entry := ui.NewRangeEntry(1, 500,
		func() string { return "required" },
		func() string { return "out of range" },
	)

	tests := []struct {
		text    string
		wantErr string
	}{
		{"", "required"},
		{"0", "out of range"},
		{"1", ""},
		{"120", ""},
		{"500", ""},
		{"501", "out of range"},
		{"12a", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			entry.SetText(tt.text)
			err := entry.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				n, ok := entry.Int()
				assert.True(t, ok)
				assert.Positive(t, n)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
