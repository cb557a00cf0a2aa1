package model

import "strings"

// Priority levels, ordered so that a higher value sorts first.
const (
	PriorityNone = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// InboxListID is the reserved list id for tasks not assigned to any list.
const InboxListID = "inbox"

// Subtask is a single checklist entry within a task.
type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
	// HasReminder is a pure data flag; nothing in this application
	// dispatches reminders.
	HasReminder bool `json:"has_reminder,omitempty"`
}

// Task is a single todo item. Its body is either free text (Description)
// or a checklist (Subtasks), selected by IsChecklistMode; the inactive
// side is always empty.
type Task struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Subtasks        []Subtask `json:"subtasks"`
	IsChecklistMode bool      `json:"is_checklist_mode"`
	IsCompleted     bool      `json:"is_completed"`
	Priority        int       `json:"priority"`
	// StartDate and DueDate are ISO calendar dates (YYYY-MM-DD),
	// "" meaning absent. A task without a due date never appears in
	// any date-based view.
	StartDate string `json:"start_date,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
	ListID    string `json:"list_id"`
	CreatedAt int64  `json:"created_at"`
}

// RangeStart returns the first day the task occupies. A task with only a
// due date is treated as single-day.
func (t Task) RangeStart() string {
	if t.StartDate != "" {
		return t.StartDate
	}
	return t.DueDate
}

// OccupiesDay reports whether the task's date range covers the given day,
// inclusive on both ends.
func (t Task) OccupiesDay(day string) bool {
	if t.DueDate == "" {
		return false
	}
	return t.RangeStart() <= day && day <= t.DueDate
}

// NormalizeDates swaps an inverted start/due range. Called at save time so
// an inverted range is never persisted.
func (t *Task) NormalizeDates() {
	if t.StartDate != "" && t.DueDate != "" && t.StartDate > t.DueDate {
		t.StartDate, t.DueDate = t.DueDate, t.StartDate
	}
}

// AllSubtasksDone reports whether the checklist is non-empty with every
// entry completed.
func (t Task) AllSubtasksDone() bool {
	if len(t.Subtasks) == 0 {
		return false
	}
	for _, s := range t.Subtasks {
		if !s.IsCompleted {
			return false
		}
	}
	return true
}

// ApplyAutoComplete marks the task completed when every subtask is done.
// The rule is one-directional: it never clears IsCompleted, and completing
// the task directly never touches subtask state.
func (t *Task) ApplyAutoComplete() {
	if t.AllSubtasksDone() {
		t.IsCompleted = true
	}
}

// checkedPrefix marks a completed line when a checklist is serialized to
// text. Matching on parse is case-insensitive.
const checkedPrefix = "[x]"

// ConvertToChecklist parses the description line by line into subtasks and
// switches the task to checklist mode. A leading "[x]" marker (any case)
// marks the line completed and is stripped from the title. gen supplies
// fresh subtask ids.
func (t *Task) ConvertToChecklist(gen func() string) {
	if t.IsChecklistMode {
		return
	}
	var subs []Subtask
	for _, line := range strings.Split(t.Description, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		done := strings.HasPrefix(strings.ToLower(trimmed), checkedPrefix)
		title := trimmed
		if done {
			title = strings.TrimSpace(trimmed[len(checkedPrefix):])
		}
		subs = append(subs, Subtask{
			ID:          gen(),
			Title:       title,
			IsCompleted: done,
		})
	}
	t.Subtasks = subs
	t.Description = ""
	t.IsChecklistMode = true
}

// ConvertToText serializes the checklist back to one line per subtask,
// prefixing completed entries with "[x] ", and switches the task to text
// mode. The round trip preserves completion state but not whitespace.
func (t *Task) ConvertToText() {
	if !t.IsChecklistMode {
		return
	}
	lines := make([]string, len(t.Subtasks))
	for i, s := range t.Subtasks {
		if s.IsCompleted {
			lines[i] = checkedPrefix + " " + s.Title
		} else {
			lines[i] = s.Title
		}
	}
	t.Description = strings.Join(lines, "\n")
	t.Subtasks = nil
	t.IsChecklistMode = false
}

// PriorityLabel returns the display name for a priority level.
func PriorityLabel(p int) string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "None"
	}
}
