package tui

import (
	"bytes"
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRun_CancelledContextIsShutdown(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, f.model,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	assert.NoError(t, err)
}

func TestRun_QuitKey(t *testing.T) {
	f := newFixture(t)
	in := bytes.NewBufferString("q")

	err := Run(context.Background(), f.model,
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	assert.NoError(t, err)
}
