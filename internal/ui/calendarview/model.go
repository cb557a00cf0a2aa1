// Package calendarview renders the month grid and translates mouse
// gestures into scheduling actions: dragging across empty cells selects
// a date range, dragging a task bar reschedules it.
package calendarview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privatetick/privatetick/internal/calendar"
	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
)

// RangeSelectedMsg reports a completed drag selection across day cells.
type RangeSelectedMsg struct {
	Start string
	End   string
}

// TaskDroppedMsg reports a task bar dropped on another day.
type TaskDroppedMsg struct {
	Task      model.Task
	DeltaDays int
}

// TaskSelectedMsg reports a click on a task bar without movement. The
// parent opens the task's detail view.
type TaskSelectedMsg struct {
	TaskID string
}

// headerLines is the title row plus the weekday row.
const headerLines = 2

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Model is the calendar view component.
type Model struct {
	keys     *keys.KeyMap
	grid     calendar.MonthGrid
	tasks    []model.Task
	gesture  calendar.Gesture
	throttle *calendar.WheelThrottle
	width    int
	height   int
	originX  int
	originY  int
}

// New creates a calendar model showing the current month.
func New(k *keys.KeyMap, wheelWindow time.Duration, width, height int) Model {
	return Model{
		keys:     k,
		grid:     calendar.CurrentMonthGrid(),
		throttle: calendar.NewWheelThrottle(wheelWindow),
		width:    width,
		height:   height,
	}
}

// SetTasks replaces the tasks drawn on the grid.
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = tasks
}

// Update handles messages for the calendar view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.grid = m.grid.Prev()
			m.gesture.Cancel()
		case key.Matches(msg, m.keys.NextMonth):
			m.grid = m.grid.Next()
			m.gesture.Cancel()
		case key.Matches(msg, m.keys.Back):
			m.gesture.Cancel()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse feeds mouse events through the gesture state machine.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress && m.throttle.Allow() {
			m.grid = m.grid.Prev()
			m.gesture.Cancel()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress && m.throttle.Allow() {
			m.grid = m.grid.Next()
			m.gesture.Cancel()
		}
		return m, nil
	}

	cell, row, ok := m.cellAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok || cell.IsPad() {
			return m, nil
		}
		if seg, found := m.segmentAt(cell.Date, row); found {
			m.gesture.PressTask(seg.Task, cell.Date)
		} else {
			m.gesture.PressCell(cell.Date)
		}
		return m, nil

	case tea.MouseActionMotion:
		if ok && !cell.IsPad() {
			m.gesture.Enter(cell.Date)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !ok || cell.IsPad() {
			m.gesture.Cancel()
			return m, nil
		}
		sel, drop := m.gesture.Release(cell.Date)
		if sel != nil {
			s := *sel
			return m, func() tea.Msg { return RangeSelectedMsg{Start: s.Start, End: s.End} }
		}
		if drop != nil {
			d := *drop
			if d.DeltaDays == 0 {
				return m, func() tea.Msg { return TaskSelectedMsg{TaskID: d.Task.ID} }
			}
			return m, func() tea.Msg { return TaskDroppedMsg{Task: d.Task, DeltaDays: d.DeltaDays} }
		}
		return m, nil
	}
	return m, nil
}

// cellAt maps terminal coordinates to a grid cell and the row offset
// inside that cell (0 is the day-number line). Mouse events arrive in
// absolute terminal coordinates, so the parent's origin offset is
// subtracted first.
func (m Model) cellAt(x, y int) (calendar.Cell, int, bool) {
	weeks := m.grid.Weeks()
	cw := m.cellWidth()
	ch := m.cellHeight()
	if cw == 0 || ch == 0 {
		return calendar.Cell{}, 0, false
	}

	gx := x - m.originX
	gy := y - m.originY - headerLines
	if gx < 0 || gy < 0 {
		return calendar.Cell{}, 0, false
	}
	col := gx / cw
	if col > 6 {
		return calendar.Cell{}, 0, false
	}
	weekIdx := gy / ch
	if weekIdx >= len(weeks) {
		return calendar.Cell{}, 0, false
	}
	return weeks[weekIdx][col], gy % ch, true
}

// segmentAt returns the task segment drawn on the given row of a day
// cell, if any. Row 0 holds the day number; segments fill the rows
// below it in order.
func (m Model) segmentAt(date string, row int) (calendar.Segment, bool) {
	if row < 1 {
		return calendar.Segment{}, false
	}
	segs := calendar.SegmentsOn(m.tasks, date)
	idx := row - 1
	if idx >= len(segs) {
		return calendar.Segment{}, false
	}
	return segs[idx], true
}

// View renders the month grid.
func (m Model) View() string {
	cw := m.cellWidth()
	ch := m.cellHeight()
	today := model.Today()
	sel := m.selection()

	title := theme.HeaderStyle.Render(m.grid.Title())

	var wd []string
	for _, name := range weekdayNames {
		wd = append(wd, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.ColorGray).
			Render(name))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, wd...)

	var rows []string
	for _, week := range m.grid.Weeks() {
		var cells []string
		for _, cell := range week {
			cells = append(cells, m.renderCell(cell, cw, ch, today, sel))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	parts := append([]string{title, header}, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderCell draws one day cell: the day number line plus as many task
// segment lines as fit.
func (m Model) renderCell(cell calendar.Cell, cw, ch int, today string, sel map[string]bool) string {
	style := lipgloss.NewStyle().Width(cw).Height(ch).MaxWidth(cw)

	if cell.IsPad() {
		return style.Render("")
	}

	day := fmt.Sprintf("%d", cell.Day)
	switch {
	case sel[cell.Date]:
		day = theme.SelectedDayStyle.Render(day)
	case cell.Date == today:
		day = theme.TodayStyle.Render(day)
	}

	lines := []string{day}
	segs := calendar.SegmentsOn(m.tasks, cell.Date)
	for _, seg := range segs {
		if len(lines) >= ch {
			break
		}
		lines = append(lines, m.renderSegment(seg, cw))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderSegment draws one task bar row. Multi-day bars repeat on every
// covered day but carry their title only on the start day.
func (m Model) renderSegment(seg calendar.Segment, cw int) string {
	label := "─"
	if seg.Start {
		label = seg.Task.Title
	}
	label = truncate(label, cw-1)

	st := theme.ListColorStyle(model.DefaultListColor)
	if seg.Task.IsCompleted {
		st = theme.CompletedStyle
	} else if seg.Task.Priority != model.PriorityNone {
		st = theme.PriorityStyle(seg.Task.Priority)
	}
	return st.MaxWidth(cw).Render(label)
}

// truncate shortens a label to at most w terminal cells without
// splitting a multi-byte rune.
func truncate(label string, w int) string {
	if w < 0 {
		w = 0
	}
	r := []rune(label)
	if len(r) <= w {
		return label
	}
	return string(r[:w])
}

// selection returns the dates covered by an in-progress drag selection.
func (m Model) selection() map[string]bool {
	r, ok := m.gesture.SelectionRange()
	if !ok {
		return nil
	}
	sel := make(map[string]bool)
	for d := r.Start; d != "" && d <= r.End; d = model.AddDays(d, 1) {
		sel[d] = true
	}
	return sel
}

func (m Model) cellWidth() int {
	return m.width / 7
}

func (m Model) cellHeight() int {
	weeks := len(m.grid.Weeks())
	if weeks == 0 {
		return 0
	}
	h := (m.height - headerLines) / weeks
	if h < 1 {
		h = 1
	}
	return h
}

// SetSize updates the calendar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetOrigin records where the calendar's top-left corner sits on the
// terminal, so mouse coordinates can be translated into the grid.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}
