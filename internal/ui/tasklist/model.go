package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
	"github.com/privatetick/privatetick/internal/view"
)

// SelectedTaskMsg is sent when the user opens a task's detail view.
type SelectedTaskMsg struct {
	TaskID string
}

// QuickAddMsg is sent when the user submits the quick-add input.
type QuickAddMsg struct {
	Title string
}

// ToggleTaskMsg is sent when the user toggles a task's completion.
type ToggleTaskMsg struct {
	TaskID string
}

// DeleteTaskMsg is sent when the user deletes the selected task.
type DeleteTaskMsg struct {
	TaskID string
}

// EditTaskMsg is sent when the user wants to edit the selected task.
type EditTaskMsg struct {
	TaskID string
}

// Model is the main task list view component.
type Model struct {
	list          list.Model
	keys          *keys.KeyMap
	active        view.View
	addMode       bool
	addInput      textinput.Model
	completed     []model.Task
	showCompleted bool
	width         int
	height        int
}

// New creates a new task list model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	ai := textinput.New()
	ai.Placeholder = "add a task..."
	ai.Prompt = "+ "
	ai.Width = width - 4

	return Model{
		list:     l,
		keys:     k,
		addInput: ai,
		width:    width,
		height:   height,
	}
}

// SetTasks replaces the displayed tasks. The tasks must already be
// filtered and sorted for the active view; completed holds the separate
// completed bucket shown under custom lists.
func (m *Model) SetTasks(v view.View, title string, tasks, completed []model.Task, colorOf func(listID string) string) {
	m.active = v
	m.list.Title = title
	m.completed = completed

	visible := tasks
	if m.showCompleted {
		visible = append(append([]model.Task{}, tasks...), completed...)
	}
	items := make([]list.Item, len(visible))
	for i, task := range visible {
		items[i] = TaskItem{Task: task, ListColor: colorOf(task.ListID)}
	}
	m.list.SetItems(items)
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Adding reports whether the quick-add input has focus.
func (m Model) Adding() bool { return m.addMode }

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.addMode {
			return m.handleAddKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleAddKeys processes key input while the quick-add field has focus.
func (m Model) handleAddKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.addInput.Value()
		m.addMode = false
		m.addInput.Reset()
		if title == "" {
			return m, nil
		}
		return m, func() tea.Msg { return QuickAddMsg{Title: title} }

	case "esc":
		m.addMode = false
		m.addInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input outside quick-add mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuickAdd):
		m.addMode = true
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Select):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return SelectedTaskMsg{TaskID: task.ID} }

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ToggleTaskMsg{TaskID: task.ID} }

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditTaskMsg{TaskID: task.ID} }

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteTaskMsg{TaskID: task.ID} }

	case msg.String() == "H":
		if m.active.Kind == view.KindCustom {
			m.showCompleted = !m.showCompleted
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the task list view.
func (m Model) View() string {
	if m.addMode {
		addBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.addInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, addBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	body := m.list.View()
	if m.active.Kind == view.KindCustom && len(m.completed) > 0 && !m.showCompleted {
		hint := theme.HelpStyle.Render(
			lipgloss.NewStyle().PaddingLeft(2).Render("") +
				countLabel(len(m.completed)),
		)
		body = lipgloss.JoinVertical(lipgloss.Left, body, hint)
	}
	return body
}

// renderEmptyState shows guidance text when the view has no tasks.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	return style.Render("No tasks here.\n\nPress a to add one.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.addInput.Width = width - 4
}

func countLabel(n int) string {
	if n == 1 {
		return "  1 completed task hidden (H to show)"
	}
	return fmt.Sprintf("  %d completed tasks hidden (H to show)", n)
}
