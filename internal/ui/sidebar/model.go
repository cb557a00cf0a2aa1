// Package sidebar renders the navigation pane: the smart views followed
// by the user's groups and lists.
package sidebar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
	"github.com/privatetick/privatetick/internal/view"
)

// ViewSelectedMsg is sent when the user activates an entry.
type ViewSelectedMsg struct {
	View view.View
}

// NewListMsg is sent when the user submits a new list name. GroupID is
// the group under the cursor, or empty for a root-level list.
type NewListMsg struct {
	Name    string
	GroupID string
}

// NewGroupMsg is sent when the user submits a new group name.
type NewGroupMsg struct {
	Name string
}

// DeleteListMsg is sent when the user deletes the list under the cursor.
type DeleteListMsg struct {
	ListID string
}

// DeleteGroupMsg is sent when the user deletes the group under the cursor.
type DeleteGroupMsg struct {
	GroupID string
}

// entryKind discriminates the rows of the sidebar.
type entryKind int

const (
	entrySmart entryKind = iota
	entryGroup
	entryList
)

// entry is one selectable sidebar row.
type entry struct {
	kind  entryKind
	view  view.View
	list  model.TaskList
	group model.ListGroup
}

// inputMode says what the text input, when visible, will create.
type inputMode int

const (
	inputNone inputMode = iota
	inputList
	inputGroup
)

// Model is the sidebar component.
type Model struct {
	keys    *keys.KeyMap
	entries []entry
	cursor  int
	active  view.View

	lists     []model.TaskList
	groups    []model.ListGroup
	collapsed map[string]bool

	mode  inputMode
	input textinput.Model

	width  int
	height int
}

// New creates a sidebar model.
func New(k *keys.KeyMap, width, height int) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 60

	return Model{
		keys:      k,
		active:    view.Today,
		collapsed: make(map[string]bool),
		input:     in,
		width:     width,
		height:    height,
	}
}

// SetData rebuilds the sidebar rows from the list and group collections.
// Grouped lists render under their group, hidden while the group is
// collapsed; the rest at root level.
func (m *Model) SetData(lists []model.TaskList, groups []model.ListGroup) {
	m.lists = lists
	m.groups = groups
	m.rebuild()
}

func (m *Model) rebuild() {
	entries := []entry{
		{kind: entrySmart, view: view.Inbox},
		{kind: entrySmart, view: view.Today},
		{kind: entrySmart, view: view.Week},
		{kind: entrySmart, view: view.Calendar},
	}

	for _, g := range m.groups {
		entries = append(entries, entry{kind: entryGroup, group: g})
		if m.collapsed[g.ID] {
			continue
		}
		for _, l := range m.lists {
			if l.GroupID == g.ID {
				entries = append(entries, entry{kind: entryList, list: l, view: view.Custom(l.ID)})
			}
		}
	}
	for _, l := range m.lists {
		if l.GroupID == "" {
			entries = append(entries, entry{kind: entryList, list: l, view: view.Custom(l.ID)})
		}
	}

	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
}

// SetActive highlights the given view without moving the cursor.
func (m *Model) SetActive(v view.View) {
	m.active = v
}

// Editing reports whether the inline input has focus.
func (m Model) Editing() bool { return m.mode != inputNone }

// Update handles messages for the sidebar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode != inputNone {
		return m.handleInputKeys(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		e := m.entries[m.cursor]
		if e.kind == entryGroup {
			m.collapsed[e.group.ID] = !m.collapsed[e.group.ID]
			m.rebuild()
			return m, nil
		}
		m.active = e.view
		v := e.view
		return m, func() tea.Msg { return ViewSelectedMsg{View: v} }

	case key.Matches(keyMsg, m.keys.NewList):
		m.mode = inputList
		m.input.Placeholder = "list name"
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(keyMsg, m.keys.NewGroup):
		m.mode = inputGroup
		m.input.Placeholder = "group name"
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(keyMsg, m.keys.Delete):
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		switch e := m.entries[m.cursor]; e.kind {
		case entryList:
			id := e.list.ID
			return m, func() tea.Msg { return DeleteListMsg{ListID: id} }
		case entryGroup:
			id := e.group.ID
			return m, func() tea.Msg { return DeleteGroupMsg{GroupID: id} }
		}
	}

	return m, nil
}

// handleInputKeys processes keys while the inline input has focus.
func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		mode := m.mode
		m.mode = inputNone
		m.input.Reset()
		if name == "" {
			return m, nil
		}
		if mode == inputGroup {
			return m, func() tea.Msg { return NewGroupMsg{Name: name} }
		}
		groupID := m.cursorGroupID()
		return m, func() tea.Msg { return NewListMsg{Name: name, GroupID: groupID} }

	case "esc":
		m.mode = inputNone
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cursorGroupID resolves which group a new list should join: the group
// under the cursor, or the cursor list's own group.
func (m Model) cursorGroupID() string {
	if m.cursor >= len(m.entries) {
		return ""
	}
	switch e := m.entries[m.cursor]; e.kind {
	case entryGroup:
		return e.group.ID
	case entryList:
		return e.list.GroupID
	}
	return ""
}

// View renders the sidebar pane.
func (m Model) View() string {
	var rows []string

	for i, e := range m.entries {
		var label string
		switch e.kind {
		case entrySmart:
			label = e.view.Title(nil)
		case entryGroup:
			marker := "▾"
			if m.collapsed[e.group.ID] {
				marker = "▸"
			}
			label = theme.HelpStyle.Render(marker + " " + e.group.Name)
		case entryList:
			dot := theme.ListColorStyle(e.list.Color).Render("●")
			indent := ""
			if e.list.GroupID != "" {
				indent = "  "
			}
			label = indent + dot + " " + e.list.Name
		}

		switch {
		case i == m.cursor:
			label = theme.SelectedItemStyle.Render(label)
		case e.kind != entryGroup && e.view == m.active:
			label = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.ColorBlue).
				PaddingLeft(2).
				Render(label)
		default:
			label = theme.ListItemStyle.Render(label)
		}
		rows = append(rows, label)
	}

	if m.mode != inputNone {
		rows = append(rows, "", m.input.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.ColorBorder).
		Render(body)
}

// SetSize updates the sidebar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
}
