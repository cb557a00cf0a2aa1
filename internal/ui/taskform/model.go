package taskform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
)

// TaskSavedMsg is dispatched when the form is submitted. For a create,
// ID is empty; for an edit it carries the id of the task being changed.
type TaskSavedMsg struct {
	ID          string
	Title       string
	Description string
	Priority    int
	StartDate   string
	DueDate     string
	ListID      string
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	priority    int
	startDate   string
	dueDate     string
	listID      string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	lists    []model.TaskList
	groups   []model.ListGroup
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{listID: model.InboxListID},
		width:  width,
		height: height,
	}
}

// SetLists sets the available lists and groups for the list selector.
func (m *Model) SetLists(lists []model.TaskList, groups []model.ListGroup) {
	m.lists = lists
	m.groups = groups
}

// StartCreate initializes the form for a new task. The arguments seed
// the fields from context: the active list and, for calendar drags, the
// selected date range.
func (m *Model) StartCreate(listID, startDate, dueDate string) tea.Cmd {
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{
		priority:  model.PriorityNone,
		startDate: startDate,
		dueDate:   dueDate,
		listID:    listID,
	}
	if m.fb.listID == "" {
		m.fb.listID = model.InboxListID
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing task's fields.
func (m *Model) StartEdit(task model.Task) tea.Cmd {
	m.editMode = true
	m.editID = task.ID
	*m.fb = formBindings{
		title:       task.Title,
		description: task.Description,
		priority:    task.Priority,
		startDate:   task.StartDate,
		dueDate:     task.DueDate,
		listID:      task.ListID,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs doing?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewSelect[int]().
			Title("Priority").
			Options(
				huh.NewOption("None", model.PriorityNone),
				huh.NewOption("Low", model.PriorityLow),
				huh.NewOption("Medium", model.PriorityMedium),
				huh.NewOption("High", model.PriorityHigh),
			).
			Value(&m.fb.priority),
		huh.NewInput().
			Title("Start Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.startDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.dueDate).
			Validate(validateOptionalDate),
		m.listField(),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) listField() huh.Field {
	return huh.NewSelect[string]().
		Title("List").
		Options(m.listOptions()...).
		Value(&m.fb.listID)
}

// listOptions orders the picker the way the sidebar does: the inbox,
// then each group's lists labeled "Group / List", then ungrouped lists.
func (m *Model) listOptions() []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("Inbox", model.InboxListID),
	}
	for _, g := range m.groups {
		for _, l := range m.lists {
			if l.GroupID == g.ID {
				opts = append(opts, huh.NewOption(g.Name+" / "+l.Name, l.ID))
			}
		}
	}
	for _, l := range m.lists {
		if l.GroupID == "" {
			opts = append(opts, huh.NewOption(l.Name, l.ID))
		}
	}
	return opts
}

func (m Model) handleSubmit() tea.Cmd {
	saved := TaskSavedMsg{
		ID:          m.editID,
		Title:       m.fb.title,
		Description: m.fb.description,
		Priority:    m.fb.priority,
		StartDate:   m.fb.startDate,
		DueDate:     m.fb.dueDate,
		ListID:      m.fb.listID,
	}
	return func() tea.Msg { return saved }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
