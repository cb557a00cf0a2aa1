package tasklist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
	// ListColor is the accent color of the task's list, resolved by the
	// owner since items do not see the list collection.
	ListColor string
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// ItemDelegate implements list.ItemDelegate for rendering task rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	task := ti.Task

	prefix := "○"
	if task.IsCompleted {
		prefix = "✓"
	}

	accent := ti.ListColor
	if accent == "" {
		accent = model.DefaultListColor
	}
	bullet := theme.ListColorStyle(accent).Render("▍")

	pri := ""
	if task.Priority != model.PriorityNone {
		pri = theme.PriorityStyle(task.Priority).Render("!"+model.PriorityLabel(task.Priority)) + " "
	}

	progress := ""
	if task.IsChecklistMode && len(task.Subtasks) > 0 {
		done := 0
		for _, s := range task.Subtasks {
			if s.IsCompleted {
				done++
			}
		}
		progress = fmt.Sprintf(" [%d/%d]", done, len(task.Subtasks))
	}

	due := ""
	if task.DueDate != "" {
		d := task.DueDate
		if task.RangeStart() != task.DueDate {
			d = task.RangeStart() + " → " + task.DueDate
		}
		due = theme.HelpStyle.Render(" " + d)
	}

	title := task.Title
	if task.IsCompleted {
		title = theme.CompletedStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s %s%s%s%s", bullet, prefix, pri, title, progress, due)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
