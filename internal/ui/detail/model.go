package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// EditRequestMsg asks the parent to open the edit form for the task.
type EditRequestMsg struct {
	TaskID string
}

// ToggleCompleteMsg asks the parent to flip the task's completion.
type ToggleCompleteMsg struct {
	TaskID string
}

// SetChecklistMsg asks the parent to convert the task body between free
// text and a checklist.
type SetChecklistMsg struct {
	TaskID    string
	Checklist bool
}

// AddSubtaskMsg asks the parent to append a subtask.
type AddSubtaskMsg struct {
	TaskID string
	Title  string
}

// ToggleSubtaskMsg asks the parent to flip a subtask's completion.
type ToggleSubtaskMsg struct {
	TaskID    string
	SubtaskID string
}

// RenameSubtaskMsg asks the parent to retitle a subtask.
type RenameSubtaskMsg struct {
	TaskID    string
	SubtaskID string
	Title     string
}

// DeleteSubtaskMsg asks the parent to remove a subtask.
type DeleteSubtaskMsg struct {
	TaskID    string
	SubtaskID string
}

// ToggleReminderMsg asks the parent to flip a subtask's reminder flag.
type ToggleReminderMsg struct {
	TaskID    string
	SubtaskID string
}

// editMode says what the inline input, when visible, is editing.
type editMode int

const (
	editNone editMode = iota
	editAdd
	editRename
)

// Model is the task detail view component.
type Model struct {
	task   model.Task
	keys   *keys.KeyMap
	cursor int
	mode   editMode
	input  textinput.Model
	width  int
	height int
}

// New creates a new detail view model.
func New(k *keys.KeyMap, width, height int) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 120

	return Model{
		keys:   k,
		input:  in,
		width:  width,
		height: height,
	}
}

// SetTask replaces the displayed task. The parent calls this after every
// mutation so the view tracks the authoritative copy.
func (m *Model) SetTask(task model.Task) {
	m.task = task
	if m.cursor >= len(task.Subtasks) {
		m.cursor = len(task.Subtasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Editing reports whether the inline input has focus.
func (m Model) Editing() bool { return m.mode != editNone }

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode != editNone {
		return m.handleInputKeys(keyMsg)
	}

	taskID := m.task.ID
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(keyMsg, m.keys.Edit):
		return m, func() tea.Msg { return EditRequestMsg{TaskID: taskID} }

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.task.Subtasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if sub, ok := m.selectedSubtask(); ok {
			id := sub.ID
			return m, func() tea.Msg { return ToggleSubtaskMsg{TaskID: taskID, SubtaskID: id} }
		}
		return m, func() tea.Msg { return ToggleCompleteMsg{TaskID: taskID} }

	case keyMsg.String() == "c":
		checklist := !m.task.IsChecklistMode
		return m, func() tea.Msg { return SetChecklistMsg{TaskID: taskID, Checklist: checklist} }

	case key.Matches(keyMsg, m.keys.QuickAdd):
		if !m.task.IsChecklistMode {
			return m, nil
		}
		m.mode = editAdd
		m.input.Placeholder = "new item"
		m.input.Reset()
		return m, m.input.Focus()

	case keyMsg.String() == "r":
		sub, ok := m.selectedSubtask()
		if !ok {
			return m, nil
		}
		m.mode = editRename
		m.input.Placeholder = "item title"
		m.input.SetValue(sub.Title)
		return m, m.input.Focus()

	case key.Matches(keyMsg, m.keys.Delete):
		if sub, ok := m.selectedSubtask(); ok {
			id := sub.ID
			return m, func() tea.Msg { return DeleteSubtaskMsg{TaskID: taskID, SubtaskID: id} }
		}

	case keyMsg.String() == "m":
		if sub, ok := m.selectedSubtask(); ok {
			id := sub.ID
			return m, func() tea.Msg { return ToggleReminderMsg{TaskID: taskID, SubtaskID: id} }
		}
	}

	return m, nil
}

// handleInputKeys processes keys while the inline input has focus.
func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.input.Value()
		mode := m.mode
		m.mode = editNone
		m.input.Reset()
		if strings.TrimSpace(title) == "" {
			return m, nil
		}
		taskID := m.task.ID
		if mode == editRename {
			if sub, ok := m.selectedSubtask(); ok {
				id := sub.ID
				return m, func() tea.Msg {
					return RenameSubtaskMsg{TaskID: taskID, SubtaskID: id, Title: title}
				}
			}
			return m, nil
		}
		return m, func() tea.Msg { return AddSubtaskMsg{TaskID: taskID, Title: title} }

	case "esc":
		m.mode = editNone
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectedSubtask returns the subtask under the cursor.
func (m Model) selectedSubtask() (model.Subtask, bool) {
	if !m.task.IsChecklistMode || m.cursor >= len(m.task.Subtasks) {
		return model.Subtask{}, false
	}
	return m.task.Subtasks[m.cursor], true
}

// View renders the detail view.
func (m Model) View() string {
	task := m.task

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	title := titleStyle.Render(task.Title)
	if task.IsCompleted {
		title = theme.CompletedStyle.Render(task.Title)
	}

	var meta []string
	if task.Priority != model.PriorityNone {
		meta = append(meta, theme.PriorityStyle(task.Priority).Render(model.PriorityLabel(task.Priority)))
	}
	if task.DueDate != "" {
		r := task.DueDate
		if task.RangeStart() != task.DueDate {
			r = task.RangeStart() + " → " + task.DueDate
		}
		meta = append(meta, theme.HelpStyle.Render(r))
	}

	sections := []string{title}
	if len(meta) > 0 {
		sections = append(sections, strings.Join(meta, "  "))
	}
	sections = append(sections, "")

	if task.IsChecklistMode {
		sections = append(sections, m.renderChecklist())
	} else if task.Description != "" {
		sections = append(sections, task.Description)
	}

	if m.mode != editNone {
		sections = append(sections, "", m.input.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 2).
		Render(content)
}

// renderChecklist draws the subtask rows with the cursor highlight.
func (m Model) renderChecklist() string {
	if len(m.task.Subtasks) == 0 {
		return theme.HelpStyle.Render("No items yet. Press a to add one.")
	}

	var rows []string
	for i, sub := range m.task.Subtasks {
		box := "☐"
		title := sub.Title
		if sub.IsCompleted {
			box = "☑"
			title = theme.CompletedStyle.Render(title)
		}
		bell := ""
		if sub.HasReminder {
			bell = " ⏰"
		}

		row := fmt.Sprintf("%s %s%s", box, title, bell)
		if i == m.cursor {
			row = theme.SelectedItemStyle.Render(row)
		} else {
			row = theme.ListItemStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 8
}
