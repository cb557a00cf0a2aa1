// Package app holds the root Bubble Tea model: view routing, the shared
// application state, and persistence after every mutation.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privatetick/privatetick/internal/config"
	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/state"
	"github.com/privatetick/privatetick/internal/store"
	"github.com/privatetick/privatetick/internal/timer"
	"github.com/privatetick/privatetick/internal/ui"
	"github.com/privatetick/privatetick/internal/ui/calendarview"
	"github.com/privatetick/privatetick/internal/ui/detail"
	helpview "github.com/privatetick/privatetick/internal/ui/help"
	"github.com/privatetick/privatetick/internal/ui/importform"
	"github.com/privatetick/privatetick/internal/ui/sidebar"
	"github.com/privatetick/privatetick/internal/ui/taskform"
	"github.com/privatetick/privatetick/internal/ui/tasklist"
	"github.com/privatetick/privatetick/internal/ui/timerview"
	"github.com/privatetick/privatetick/internal/view"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewTasks ViewState = iota
	ViewCalendar
	ViewDetail
	ViewForm
	ViewHelp
	ViewTimer
	ViewImport
)

// tickMsg drives the focus timer countdown.
type tickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	currentView  ViewState
	previousView ViewState
	active       view.View

	state *state.State
	store store.Store
	keys  *keys.KeyMap
	timer *timer.Timer

	layout       ui.Layout
	sidebar      sidebar.Model
	taskList     tasklist.Model
	calendarView calendarview.Model
	detailView   detail.Model
	formView     taskform.Model
	helpView     helpview.Model
	timerView    timerview.Model
	importView   importform.Model

	sidebarFocus bool
	detailID     string
	ready        bool
	status       string
}

// New creates the root application model.
func New(st *state.State, s store.Store, cfg *config.Config) Model {
	k := keys.DefaultKeyMap()
	t := timer.New(cfg.Timer)
	wheel := time.Duration(cfg.Display.WheelThrottleMs) * time.Millisecond

	m := Model{
		currentView:  ViewTasks,
		active:       view.Today,
		state:        st,
		store:        s,
		keys:         k,
		timer:        t,
		sidebar:      sidebar.New(k, 26, 24),
		taskList:     tasklist.New(k, 80, 24),
		calendarView: calendarview.New(k, wheel, 80, 24),
		detailView:   detail.New(k, 80, 24),
		formView:     taskform.New(80, 24),
		helpView:     helpview.New(k, 80, 24),
		timerView:    timerview.New(t, 80, 24),
		importView:   importform.New(80, 24),
	}
	m.refresh()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds every derived view from the state collections.
func (m *Model) refresh() {
	m.sidebar.SetData(m.state.Lists, m.state.Groups)
	m.sidebar.SetActive(m.active)

	colorOf := func(listID string) string {
		if l, ok := m.state.List(listID); ok {
			return l.Color
		}
		return ""
	}

	today := model.Today()
	tasks := view.Select(m.state.Tasks, m.active, today)
	completed := view.Completed(m.state.Tasks, m.active)
	m.taskList.SetTasks(m.active, m.active.Title(m.state.Lists), tasks, completed, colorOf)

	m.calendarView.SetTasks(m.state.Tasks)

	if task, ok := m.state.Task(m.detailID); ok {
		m.detailView.SetTask(task)
	}
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		return m.updateActiveView(msg)

	case tickMsg:
		if m.timer.Tick() {
			m.status = m.timer.Mode.Label() + " finished"
		}
		if m.timer.Running {
			return m, m.tickCmd()
		}
		return m, nil

	case sidebar.ViewSelectedMsg:
		m.active = msg.View
		if msg.View.Kind == view.KindCalendar {
			m.currentView = ViewCalendar
		} else {
			m.currentView = ViewTasks
		}
		m.sidebarFocus = false
		m.refresh()
		return m, nil

	case sidebar.NewListMsg:
		if _, err := m.state.CreateList(msg.Name, msg.GroupID, ""); err == nil {
			m.refresh()
			m.persist()
			return m, nil
		}
		return m, nil

	case sidebar.NewGroupMsg:
		if _, err := m.state.CreateGroup(msg.Name); err == nil {
			m.refresh()
			m.persist()
			return m, nil
		}
		return m, nil

	case sidebar.DeleteListMsg:
		m.state.DeleteList(msg.ListID)
		if m.active.Kind == view.KindCustom && m.active.ListID == msg.ListID {
			m.active = view.Inbox
		}
		m.refresh()
		m.persist()
		return m, nil

	case sidebar.DeleteGroupMsg:
		m.state.DeleteGroup(msg.GroupID)
		m.refresh()
		m.persist()
		return m, nil

	case tasklist.QuickAddMsg:
		if _, err := m.state.QuickAdd(msg.Title, m.active); err == nil {
			m.refresh()
			m.persist()
			return m, nil
		}
		return m, nil

	case tasklist.SelectedTaskMsg:
		return m.openDetail(msg.TaskID)

	case tasklist.ToggleTaskMsg:
		m.state.ToggleComplete(msg.TaskID)
		m.refresh()
		m.persist()
		return m, nil

	case tasklist.DeleteTaskMsg:
		m.state.DeleteTask(msg.TaskID)
		m.refresh()
		m.persist()
		return m, nil

	case tasklist.EditTaskMsg:
		return m.openEditForm(msg.TaskID)

	case calendarview.RangeSelectedMsg:
		m.previousView = m.currentView
		m.currentView = ViewForm
		m.formView.SetLists(m.state.Lists, m.state.Groups)
		return m, m.formView.StartCreate(m.formListID(), msg.Start, msg.End)

	case calendarview.TaskDroppedMsg:
		m.state.Reschedule(msg.Task.ID, msg.DeltaDays)
		m.refresh()
		m.persist()
		return m, nil

	case calendarview.TaskSelectedMsg:
		return m.openDetail(msg.TaskID)

	case taskform.TaskSavedMsg:
		return m.handleFormSaved(msg)

	case taskform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case detail.BackMsg:
		m.currentView = m.previousView
		return m, nil

	case detail.EditRequestMsg:
		return m.openEditForm(msg.TaskID)

	case detail.ToggleCompleteMsg:
		m.state.ToggleComplete(msg.TaskID)
		return m.afterDetailMutation(msg.TaskID)

	case detail.SetChecklistMsg:
		m.state.SetChecklistMode(msg.TaskID, msg.Checklist)
		return m.afterDetailMutation(msg.TaskID)

	case detail.AddSubtaskMsg:
		m.state.AddSubtask(msg.TaskID, msg.Title)
		return m.afterDetailMutation(msg.TaskID)

	case detail.ToggleSubtaskMsg:
		m.state.ToggleSubtask(msg.TaskID, msg.SubtaskID)
		return m.afterDetailMutation(msg.TaskID)

	case detail.RenameSubtaskMsg:
		m.state.RenameSubtask(msg.TaskID, msg.SubtaskID, msg.Title)
		return m.afterDetailMutation(msg.TaskID)

	case detail.DeleteSubtaskMsg:
		m.state.DeleteSubtask(msg.TaskID, msg.SubtaskID)
		return m.afterDetailMutation(msg.TaskID)

	case detail.ToggleReminderMsg:
		m.state.ToggleSubtaskReminder(msg.TaskID, msg.SubtaskID)
		return m.afterDetailMutation(msg.TaskID)

	case timerview.CloseMsg:
		m.currentView = m.previousView
		return m, nil

	case importform.ImportRequestMsg:
		m.runImport(msg.Path)
		return m, nil

	case importform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work regardless of the focused
// component, unless a text input owns the keyboard.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.inputActive() {
		return false, m, nil
	}

	switch {
	case msg.String() == "ctrl+c":
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewTasks || m.currentView == ViewCalendar {
			return true, m, tea.Quit
		}

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
		} else {
			m.previousView = m.currentView
			m.currentView = ViewHelp
		}
		return true, m, nil

	case key.Matches(msg, m.keys.ViewInbox):
		mdl, cmd := m.switchView(view.Inbox)
		return true, mdl, cmd
	case key.Matches(msg, m.keys.ViewToday):
		mdl, cmd := m.switchView(view.Today)
		return true, mdl, cmd
	case key.Matches(msg, m.keys.ViewWeek):
		mdl, cmd := m.switchView(view.Week)
		return true, mdl, cmd
	case key.Matches(msg, m.keys.ViewCalendar):
		mdl, cmd := m.switchView(view.Calendar)
		return true, mdl, cmd

	case key.Matches(msg, m.keys.Sidebar):
		if m.currentView == ViewTasks || m.currentView == ViewCalendar {
			m.sidebarFocus = !m.sidebarFocus
			return true, m, nil
		}

	case key.Matches(msg, m.keys.NewTask):
		if m.currentView == ViewTasks || m.currentView == ViewCalendar {
			m.previousView = m.currentView
			m.currentView = ViewForm
			m.formView.SetLists(m.state.Lists, m.state.Groups)
			return true, m, m.formView.StartCreate(m.formListID(), "", "")
		}

	case key.Matches(msg, m.keys.Timer):
		if m.currentView == ViewTasks || m.currentView == ViewCalendar {
			m.previousView = m.currentView
			m.currentView = ViewTimer
			return true, m, nil
		}

	case key.Matches(msg, m.keys.Import):
		if m.currentView == ViewTasks || m.currentView == ViewCalendar {
			m.previousView = m.currentView
			m.currentView = ViewImport
			return true, m, m.importView.Focus()
		}
	}

	return false, m, nil
}

// inputActive reports whether a text input currently owns the keyboard,
// in which case global single-letter shortcuts must not fire.
func (m Model) inputActive() bool {
	switch m.currentView {
	case ViewForm, ViewImport:
		return true
	case ViewDetail:
		return m.detailView.Editing()
	case ViewTasks:
		if m.sidebarFocus {
			return m.sidebar.Editing()
		}
		return m.taskList.Adding()
	case ViewCalendar:
		if m.sidebarFocus {
			return m.sidebar.Editing()
		}
	}
	return false
}

// switchView activates a smart view.
func (m Model) switchView(v view.View) (tea.Model, tea.Cmd) {
	m.active = v
	if v.Kind == view.KindCalendar {
		m.currentView = ViewCalendar
	} else {
		m.currentView = ViewTasks
	}
	m.sidebarFocus = false
	m.refresh()
	return m, nil
}

// openDetail switches to the detail view for the given task.
func (m Model) openDetail(taskID string) (tea.Model, tea.Cmd) {
	task, ok := m.state.Task(taskID)
	if !ok {
		return m, nil
	}
	m.previousView = m.currentView
	m.currentView = ViewDetail
	m.detailID = taskID
	m.detailView.SetTask(task)
	return m, nil
}

// openEditForm switches to the edit form for the given task.
func (m Model) openEditForm(taskID string) (tea.Model, tea.Cmd) {
	task, ok := m.state.Task(taskID)
	if !ok {
		return m, nil
	}
	m.previousView = m.currentView
	m.currentView = ViewForm
	m.formView.SetLists(m.state.Lists, m.state.Groups)
	return m, m.formView.StartEdit(task)
}

// afterDetailMutation refreshes views and persists after a detail-view
// mutation, keeping the detail view open on the same task.
func (m Model) afterDetailMutation(taskID string) (tea.Model, tea.Cmd) {
	if task, ok := m.state.Task(taskID); ok {
		m.detailView.SetTask(task)
	}
	m.refresh()
	m.persist()
	return m, nil
}

// handleFormSaved applies a submitted task form.
func (m Model) handleFormSaved(msg taskform.TaskSavedMsg) (tea.Model, tea.Cmd) {
	if msg.ID == "" {
		_, err := m.state.CreateTask(state.TaskDraft{
			Title:       msg.Title,
			Description: msg.Description,
			Priority:    msg.Priority,
			StartDate:   msg.StartDate,
			DueDate:     msg.DueDate,
			ListID:      msg.ListID,
		})
		if err != nil {
			m.currentView = m.previousView
			return m, nil
		}
	} else {
		task, ok := m.state.Task(msg.ID)
		if !ok {
			m.currentView = m.previousView
			return m, nil
		}
		task.Title = msg.Title
		if !task.IsChecklistMode {
			task.Description = msg.Description
		}
		task.Priority = msg.Priority
		task.StartDate = msg.StartDate
		task.DueDate = msg.DueDate
		task.ListID = msg.ListID
		if err := m.state.UpdateTask(task); err != nil {
			m.currentView = m.previousView
			return m, nil
		}
	}

	m.currentView = m.previousView
	if m.currentView == ViewDetail && msg.ID != "" {
		if task, ok := m.state.Task(msg.ID); ok {
			m.detailView.SetTask(task)
		}
	}
	m.refresh()
	m.persist()
	return m, nil
}

// formListID returns the list a new task should default to.
func (m Model) formListID() string {
	if m.active.Kind == view.KindCustom {
		return m.active.ListID
	}
	return model.InboxListID
}

// updateActiveView dispatches the message to the focused component.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewTasks:
		if m.sidebarFocus {
			m.sidebar, cmd = m.sidebar.Update(msg)
		} else {
			m.taskList, cmd = m.taskList.Update(msg)
		}
	case ViewCalendar:
		if m.sidebarFocus {
			if _, ok := msg.(tea.MouseMsg); !ok {
				m.sidebar, cmd = m.sidebar.Update(msg)
				return m, cmd
			}
		}
		m.calendarView, cmd = m.calendarView.Update(msg)
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewTimer:
		prevRunning := m.timer.Running
		m.timerView, cmd = m.timerView.Update(msg)
		if !prevRunning && m.timer.Running {
			cmd = tea.Batch(cmd, m.tickCmd())
		}
	case ViewImport:
		m.importView, cmd = m.importView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("PrivateTick", m.headerStatus())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	var content string
	switch m.currentView {
	case ViewTasks:
		content = m.layout.RenderSplit(m.sidebar.View(), m.taskList.View())
	case ViewCalendar:
		content = m.layout.RenderSplit(m.sidebar.View(), m.calendarView.View())
	case ViewDetail:
		content = m.detailView.View()
	case ViewForm:
		content = m.formView.View()
	case ViewHelp:
		content = m.helpView.View()
	case ViewTimer:
		content = m.timerView.View()
	case ViewImport:
		content = m.importView.View()
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// headerStatus returns the right-hand header segment.
func (m Model) headerStatus() string {
	if m.timer.Running {
		return m.timer.Mode.Label() + " " + m.timer.Clock()
	}
	return model.Today()
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.status != "" {
		return m.status
	}

	switch m.currentView {
	case ViewDetail:
		return "esc back | e edit | x toggle | c checklist | a add item | r rename | d delete | m reminder"
	case ViewForm:
		return "enter next | esc cancel"
	case ViewHelp:
		return "? close help"
	case ViewTimer:
		return "space start/pause | r reset | 1/2/3 mode | esc close"
	case ViewImport:
		return "enter import | esc cancel"
	case ViewCalendar:
		return "drag days: new task | drag bar: move | h/l month | tab sidebar | q quit"
	default:
		if m.sidebarFocus {
			return "enter open | L new list | G new group | d delete | tab back"
		}
		return "a add | enter detail | x done | e edit | d delete | 1-4 views | ? help | q quit"
	}
}

// resize propagates terminal dimensions to all components.
func (m *Model) resize() {
	cw := m.layout.ContentWidth()
	ch := m.layout.ContentHeight()
	fw := m.layout.Width

	// The sidebar's right border takes one column, so its content is a
	// column narrower than the region it occupies.
	m.sidebar.SetSize(m.layout.SidebarWidth-1, ch)
	m.taskList.SetSize(cw, ch)
	m.calendarView.SetSize(cw, ch)
	m.calendarView.SetOrigin(m.layout.SidebarWidth, m.layout.HeaderHeight)
	m.detailView.SetSize(fw, ch)
	m.formView.SetSize(fw, ch)
	m.helpView.SetSize(fw, ch)
	m.timerView.SetSize(fw, ch)
	m.importView.SetSize(fw, ch)
}

// persist writes dirty collections before the next message is handled.
// State is only ever touched from the update loop, so saves and imports
// run inline rather than as commands.
func (m *Model) persist() {
	if err := m.state.Save(m.store); err != nil {
		m.status = "save failed: " + err.Error()
	}
}

// runImport reads and merges a backup file.
func (m *Model) runImport(path string) {
	m.currentView = ViewTasks

	f, err := os.Open(path)
	if err != nil {
		m.status = "import failed: " + err.Error()
		return
	}
	defer f.Close()

	count, err := m.state.Import(f)
	if err != nil {
		m.status = "import failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("imported %d tasks", count)
	m.refresh()
	m.persist()
}

// tickCmd schedules the next timer tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
