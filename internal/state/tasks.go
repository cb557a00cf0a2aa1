package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/view"
)

// TaskDraft carries the fields a caller may set when creating a task;
// everything else is defaulted.
type TaskDraft struct {
	Title           string
	Description     string
	Subtasks        []model.Subtask
	IsChecklistMode bool
	Priority        int
	StartDate       string
	DueDate         string
	ListID          string
}

// CreateTask builds a task from the draft, fills defaults, and prepends
// it to the collection. A blank title returns ErrEmptyTitle and creates
// nothing.
func (st *State) CreateTask(d TaskDraft) (model.Task, error) {
	if strings.TrimSpace(d.Title) == "" {
		return model.Task{}, ErrEmptyTitle
	}

	task := model.Task{
		ID:              st.genID(),
		Title:           d.Title,
		Description:     d.Description,
		Subtasks:        d.Subtasks,
		IsChecklistMode: d.IsChecklistMode,
		Priority:        d.Priority,
		StartDate:       d.StartDate,
		DueDate:         d.DueDate,
		ListID:          d.ListID,
		CreatedAt:       time.Now().UnixMilli(),
	}
	if task.ListID == "" {
		task.ListID = model.InboxListID
	}
	if task.StartDate == "" {
		task.StartDate = task.DueDate
	}
	task.NormalizeDates()
	task.ApplyAutoComplete()

	st.Tasks = append([]model.Task{task}, st.Tasks...)
	st.dirtyTasks = true
	return task, nil
}

// QuickAdd creates a titled task assigned by the active view: custom
// views receive the task directly, the today view additionally dates it
// today, and everything else lands in the inbox.
func (st *State) QuickAdd(title string, v view.View) (model.Task, error) {
	d := TaskDraft{Title: title, ListID: model.InboxListID}
	switch v.Kind {
	case view.KindCustom:
		d.ListID = v.ListID
	case view.KindToday:
		today := model.Today()
		d.StartDate = today
		d.DueDate = today
	}
	return st.CreateTask(d)
}

// Task returns a copy of the task with the given id.
func (st *State) Task(id string) (model.Task, bool) {
	for _, t := range st.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// UpdateTask replaces the stored task by id with the given value after
// normalizing its date range. A blank title returns ErrEmptyTitle and
// changes nothing. Checklist tasks keep their description empty; a
// checklist body lives in the subtasks, never alongside free text.
func (st *State) UpdateTask(task model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return ErrEmptyTitle
	}
	task.NormalizeDates()
	if task.IsChecklistMode {
		task.Description = ""
	}

	for i := range st.Tasks {
		if st.Tasks[i].ID == task.ID {
			st.Tasks[i] = task
			st.dirtyTasks = true
			return nil
		}
	}
	return fmt.Errorf("task %s not found", task.ID)
}

// DeleteTask removes a task by id.
func (st *State) DeleteTask(id string) {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			st.Tasks = append(st.Tasks[:i], st.Tasks[i+1:]...)
			st.dirtyTasks = true
			return
		}
	}
}

// ToggleComplete flips a task's completion state. Subtasks are not
// touched.
func (st *State) ToggleComplete(id string) {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			st.Tasks[i].IsCompleted = !st.Tasks[i].IsCompleted
			st.dirtyTasks = true
			return
		}
	}
}

// SetChecklistMode converts the task body between free text and a
// checklist. Converting an already-converted task is a no-op.
func (st *State) SetChecklistMode(id string, checklist bool) {
	st.mutateTask(id, func(t *model.Task) {
		if checklist {
			t.ConvertToChecklist(st.genID)
		} else {
			t.ConvertToText()
		}
	})
}

// AddSubtask appends a new open subtask. Blank titles are ignored.
func (st *State) AddSubtask(taskID, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	st.mutateTask(taskID, func(t *model.Task) {
		t.Subtasks = append(t.Subtasks, model.Subtask{
			ID:    st.genID(),
			Title: title,
		})
	})
}

// ToggleSubtask flips one subtask's completion state and re-evaluates
// the parent's auto-completion rule.
func (st *State) ToggleSubtask(taskID, subtaskID string) {
	st.mutateTask(taskID, func(t *model.Task) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].IsCompleted = !t.Subtasks[i].IsCompleted
				return
			}
		}
	})
}

// RenameSubtask sets a subtask's title.
func (st *State) RenameSubtask(taskID, subtaskID, title string) {
	st.mutateTask(taskID, func(t *model.Task) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].Title = title
				return
			}
		}
	})
}

// DeleteSubtask removes a subtask from its parent.
func (st *State) DeleteSubtask(taskID, subtaskID string) {
	st.mutateTask(taskID, func(t *model.Task) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
				return
			}
		}
	})
}

// ToggleSubtaskReminder flips the advisory reminder flag on a subtask.
func (st *State) ToggleSubtaskReminder(taskID, subtaskID string) {
	st.mutateTask(taskID, func(t *model.Task) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].HasReminder = !t.Subtasks[i].HasReminder
				return
			}
		}
	})
}

// Reschedule shifts both ends of a task's date range by deltaDays,
// preserving its span.
func (st *State) Reschedule(taskID string, deltaDays int) {
	st.mutateTask(taskID, func(t *model.Task) {
		if t.DueDate == "" {
			return
		}
		start := t.RangeStart()
		t.StartDate = model.AddDays(start, deltaDays)
		t.DueDate = model.AddDays(t.DueDate, deltaDays)
	})
}

// mutateTask applies fn to the task with the given id, then re-evaluates
// the auto-completion rule and marks the collection dirty.
func (st *State) mutateTask(id string, fn func(*model.Task)) {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			fn(&st.Tasks[i])
			st.Tasks[i].ApplyAutoComplete()
			st.dirtyTasks = true
			return
		}
	}
}
