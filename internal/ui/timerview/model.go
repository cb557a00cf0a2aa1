package timerview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/theme"
	"github.com/privatetick/privatetick/internal/timer"
)

// CloseMsg signals the parent to dismiss the timer overlay. The timer
// itself keeps running in the background.
type CloseMsg struct{}

// Model is the focus timer overlay. The countdown state lives in the
// parent so it survives the overlay being closed.
type Model struct {
	timer  *timer.Timer
	width  int
	height int
}

// New creates a timer overlay around a shared countdown.
func New(t *timer.Timer, width, height int) Model {
	return Model{timer: t, width: width, height: height}
}

// Update handles messages for the timer overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "t":
		return m, func() tea.Msg { return CloseMsg{} }
	case " ", "enter":
		m.timer.Toggle()
	case "r":
		m.timer.Reset()
	case "1":
		m.timer.SetMode(timer.ModeFocus)
	case "2":
		m.timer.SetMode(timer.ModeShortBreak)
	case "3":
		m.timer.SetMode(timer.ModeLongBreak)
	}
	return m, nil
}

// View renders the timer overlay.
func (m Model) View() string {
	modeStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)

	state := "paused"
	if m.timer.Running {
		state = "running"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		modeStyle.Render(m.timer.Mode.Label()),
		"",
		clockStyle.Render(m.timer.Clock()),
		theme.HelpStyle.Render(state),
		"",
		theme.HelpStyle.Render("space start/pause | r reset | 1/2/3 mode | esc close"),
	)

	box := theme.BorderStyle.Padding(1, 4).Render(content)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// SetSize updates the overlay dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
