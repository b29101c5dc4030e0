package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// Run drives m until the user quits or ctx is cancelled. Cancellation
// (SIGINT, SIGTERM) is a normal shutdown and returns nil.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(m, opts...).Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompTUI)
		return nil
	}
	return fmt.Errorf("%s: %w", config.ErrTUIFailed, err)
}
