package importform

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/theme"
)

// ImportRequestMsg carries the path of the backup file to import.
type ImportRequestMsg struct {
	Path string
}

// CancelMsg signals the parent to dismiss the prompt.
type CancelMsg struct{}

// Model is the import prompt: a single path input.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates an import prompt model.
func New(width, height int) Model {
	in := textinput.New()
	in.Placeholder = "~/Downloads/TickTick-backup.csv"
	in.Prompt = "file: "
	in.CharLimit = 256
	in.Width = 60

	return Model{input: in, width: width, height: height}
}

// Focus prepares the prompt for input.
func (m *Model) Focus() tea.Cmd {
	m.input.Reset()
	return m.input.Focus()
}

// Update handles messages for the import prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		path := m.input.Value()
		if path == "" {
			return m, nil
		}
		return m, func() tea.Msg { return ImportRequestMsg{Path: path} }
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the import prompt.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Import TickTick Backup"),
		m.input.View(),
		"",
		theme.HelpStyle.Render("enter import | esc cancel"),
	)

	box := theme.BorderStyle.Padding(1, 2).Render(content)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// SetSize updates the prompt dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width-12 < m.input.Width {
		m.input.Width = width - 12
	}
}
