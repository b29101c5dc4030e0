// Package tui renders the wheel pickers in a terminal. It drives the same
// picker models as the desktop app through their column projection.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// Panel is one picker shown as a tab.
type Panel struct {
	Name  string
	Title string
	Model picker.Model
	// Describe renders the bound value for the summary line.
	Describe func() string
}

// Model is the bubbletea model hosting a set of panels.
type Model struct {
	panels []Panel
	active int
	focus  int

	labels locale.Labels
	keys   KeyMap
	help   help.Model
	style  Style
	title  string

	quitting bool
	log      *slog.Logger
}

// New builds the terminal model. The panel named first is shown first when
// it exists.
func New(panels []Panel, first string, labels locale.Labels, style Style) Model {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	m := Model{
		panels: panels,
		labels: labels,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		style:  style,
		log:    slog.Default().With(config.LogKeyComponent, config.CompTUI),
	}
	for i, p := range panels {
		if p.Name == first {
			m.active = i
		}
	}
	return m
}

// WithTitle sets the heading line.
func (m Model) WithTitle(title string) Model {
	m.title = title
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if p, ok := m.current(); ok {
		p.Model.Appear()
	}
	return nil
}

// Active returns the name of the visible panel.
func (m Model) Active() string {
	if p, ok := m.current(); ok {
		return p.Name
	}
	return ""
}

// Focus returns the index of the focused column.
func (m Model) Focus() int {
	return m.focus
}

// Columns returns the columns of the visible panel.
func (m Model) Columns() []picker.Column {
	if p, ok := m.current(); ok {
		return p.Model.Columns(m.labels)
	}
	return nil
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Next):
			m.switchPanel(1)

		case key.Matches(msg, m.keys.Prev):
			m.switchPanel(-1)

		case key.Matches(msg, m.keys.Left):
			if m.focus > 0 {
				m.focus--
			}

		case key.Matches(msg, m.keys.Right):
			if m.focus < len(m.Columns())-1 {
				m.focus++
			}

		case key.Matches(msg, m.keys.Up):
			m.scroll(-1)

		case key.Matches(msg, m.keys.Down):
			m.scroll(1)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.style.Selected.Render(m.title))
		b.WriteString("\n\n")
	}

	tabs := make([]string, len(m.panels))
	for i, p := range m.panels {
		if i == m.active {
			tabs[i] = m.style.TabOn.Render(p.Title)
		} else {
			tabs[i] = m.style.Tab.Render(p.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	b.WriteString(renderColumns(m.Columns(), m.focus, m.style))

	if p, ok := m.current(); ok && p.Describe != nil {
		b.WriteString("\n")
		b.WriteString(m.style.Summary.Render(p.Describe()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) current() (Panel, bool) {
	if m.active < 0 || m.active >= len(m.panels) {
		return Panel{}, false
	}
	return m.panels[m.active], true
}

func (m *Model) switchPanel(step int) {
	n := len(m.panels)
	if n == 0 {
		return
	}
	m.active = ((m.active+step)%n + n) % n
	m.focus = 0
	m.panels[m.active].Model.Appear()
	m.log.Debug(config.MsgResync, config.LogKeyPicker, m.panels[m.active].Name)
}

// scroll moves the focused wheel by step rows. Circular wheels wrap, the
// others stop at their ends.
func (m *Model) scroll(step int) {
	cols := m.Columns()
	if m.focus >= len(cols) {
		return
	}
	c := cols[m.focus]
	n := len(c.Labels)
	if n == 0 {
		return
	}

	i := c.Selected
	switch {
	case i < 0 && step > 0:
		i = 0
	case i < 0:
		i = n - 1
	case c.Circular:
		i = ((i+step)%n + n) % n
	default:
		i = min(max(i+step, 0), n-1)
	}
	if i == c.Selected {
		return
	}
	c.Select(i)
	m.log.Debug(config.MsgBoundUpdated,
		config.LogKeyWheel, c.Kind.String(),
		config.LogKeyValue, c.Labels[i],
	)
}
