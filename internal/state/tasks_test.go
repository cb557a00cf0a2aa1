package state

import (
	"errors"
	"fmt"
	"testing"

	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/view"
)

func newTestState() *State {
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return New(nil, nil, nil, gen)
}

func TestCreateTaskDefaults(t *testing.T) {
	st := newTestState()

	task, err := st.CreateTask(TaskDraft{Title: "Write report", DueDate: "2024-06-05"})
	if err != nil {
		t.Fatal(err)
	}
	if task.ListID != model.InboxListID {
		t.Errorf("list = %q, want inbox", task.ListID)
	}
	if task.StartDate != "2024-06-05" {
		t.Errorf("start = %q, want mirrored due date", task.StartDate)
	}
	if task.CreatedAt == 0 {
		t.Error("created timestamp not set")
	}
	if len(st.Tasks) != 1 || !st.Dirty() {
		t.Error("task not recorded in state")
	}
}

func TestCreateTaskPrepends(t *testing.T) {
	st := newTestState()
	st.CreateTask(TaskDraft{Title: "first"})
	st.CreateTask(TaskDraft{Title: "second"})

	if st.Tasks[0].Title != "second" {
		t.Errorf("newest task should come first, got %q", st.Tasks[0].Title)
	}
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	st := newTestState()
	_, err := st.CreateTask(TaskDraft{Title: "   "})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}
	if len(st.Tasks) != 0 || st.Dirty() {
		t.Error("rejected create must not touch state")
	}
}

func TestCreateTaskNormalizesInvertedRange(t *testing.T) {
	st := newTestState()
	task, err := st.CreateTask(TaskDraft{
		Title:     "trip",
		StartDate: "2024-06-10",
		DueDate:   "2024-06-05",
	})
	if err != nil {
		t.Fatal(err)
	}
	if task.StartDate != "2024-06-05" || task.DueDate != "2024-06-10" {
		t.Errorf("range = [%s, %s], want swapped", task.StartDate, task.DueDate)
	}
}

func TestQuickAdd(t *testing.T) {
	st := newTestState()
	today := model.Today()

	inbox, _ := st.QuickAdd("one", view.Inbox)
	if inbox.ListID != model.InboxListID || inbox.DueDate != "" {
		t.Errorf("inbox quick add = %+v", inbox)
	}

	todays, _ := st.QuickAdd("two", view.Today)
	if todays.DueDate != today || todays.StartDate != today {
		t.Errorf("today quick add dated [%s, %s], want %s", todays.StartDate, todays.DueDate, today)
	}

	custom, _ := st.QuickAdd("three", view.Custom("l1"))
	if custom.ListID != "l1" {
		t.Errorf("custom quick add list = %q, want l1", custom.ListID)
	}
}

func TestUpdateTask(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{Title: "draft"})

	task.Title = "final"
	task.Priority = model.PriorityHigh
	if err := st.UpdateTask(task); err != nil {
		t.Fatal(err)
	}
	got, _ := st.Task(task.ID)
	if got.Title != "final" || got.Priority != model.PriorityHigh {
		t.Errorf("stored task = %+v", got)
	}

	task.Title = ""
	if err := st.UpdateTask(task); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("err = %v, want ErrEmptyTitle", err)
	}

	missing := model.Task{ID: "nope", Title: "x"}
	if err := st.UpdateTask(missing); err == nil {
		t.Error("updating a missing task should fail")
	}
}

func TestUpdateTaskClearsChecklistDescription(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{
		Title:           "chores",
		IsChecklistMode: true,
		Subtasks:        []model.Subtask{{ID: "s1", Title: "dishes"}},
	})

	task.Description = "left over from an edit"
	if err := st.UpdateTask(task); err != nil {
		t.Fatal(err)
	}
	got, _ := st.Task(task.ID)
	if got.Description != "" {
		t.Errorf("checklist task stored description %q, want empty", got.Description)
	}
	if len(got.Subtasks) != 1 {
		t.Error("subtasks lost on update")
	}
}

func TestToggleCompleteLeavesSubtasks(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{
		Title:           "chores",
		IsChecklistMode: true,
		Subtasks:        []model.Subtask{{ID: "s1", Title: "dishes"}},
	})

	st.ToggleComplete(task.ID)
	got, _ := st.Task(task.ID)
	if !got.IsCompleted {
		t.Error("task should be completed")
	}
	if got.Subtasks[0].IsCompleted {
		t.Error("completing the task must not complete subtasks")
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{Title: "project", IsChecklistMode: true})

	st.AddSubtask(task.ID, "step one")
	st.AddSubtask(task.ID, "step two")
	st.AddSubtask(task.ID, "  ")
	got, _ := st.Task(task.ID)
	if len(got.Subtasks) != 2 {
		t.Fatalf("got %d subtasks, want 2 (blank ignored)", len(got.Subtasks))
	}

	first := got.Subtasks[0].ID
	st.RenameSubtask(task.ID, first, "step 1 revised")
	st.ToggleSubtask(task.ID, first)
	got, _ = st.Task(task.ID)
	if got.Subtasks[0].Title != "step 1 revised" || !got.Subtasks[0].IsCompleted {
		t.Errorf("subtask = %+v", got.Subtasks[0])
	}
	if got.IsCompleted {
		t.Error("task should stay open while a subtask remains")
	}

	st.ToggleSubtask(task.ID, got.Subtasks[1].ID)
	got, _ = st.Task(task.ID)
	if !got.IsCompleted {
		t.Error("completing the last subtask should auto-complete the task")
	}

	st.ToggleSubtask(task.ID, first)
	got, _ = st.Task(task.ID)
	if !got.IsCompleted {
		t.Error("reopening a subtask must not reopen the task")
	}

	st.DeleteSubtask(task.ID, first)
	got, _ = st.Task(task.ID)
	if len(got.Subtasks) != 1 {
		t.Errorf("got %d subtasks after delete, want 1", len(got.Subtasks))
	}

	st.ToggleSubtaskReminder(task.ID, got.Subtasks[0].ID)
	got, _ = st.Task(task.ID)
	if !got.Subtasks[0].HasReminder {
		t.Error("reminder flag not set")
	}
}

func TestSetChecklistMode(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{Title: "notes", Description: "[x] done line\nopen line"})

	st.SetChecklistMode(task.ID, true)
	got, _ := st.Task(task.ID)
	if !got.IsChecklistMode || len(got.Subtasks) != 2 {
		t.Fatalf("conversion produced %+v", got)
	}
	if !got.Subtasks[0].IsCompleted || got.Subtasks[0].Title != "done line" {
		t.Errorf("subtask = %+v", got.Subtasks[0])
	}

	st.SetChecklistMode(task.ID, false)
	got, _ = st.Task(task.ID)
	if got.IsChecklistMode || got.Description != "[x] done line\nopen line" {
		t.Errorf("round trip gave %q", got.Description)
	}
}

func TestReschedule(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{
		Title:     "offsite",
		StartDate: "2024-06-01",
		DueDate:   "2024-06-03",
	})

	st.Reschedule(task.ID, 3)
	got, _ := st.Task(task.ID)
	if got.StartDate != "2024-06-04" || got.DueDate != "2024-06-06" {
		t.Errorf("range = [%s, %s], want [2024-06-04, 2024-06-06]", got.StartDate, got.DueDate)
	}

	undated, _ := st.CreateTask(TaskDraft{Title: "someday"})
	st.Reschedule(undated.ID, 5)
	got, _ = st.Task(undated.ID)
	if got.DueDate != "" {
		t.Errorf("undated task should stay undated, got %q", got.DueDate)
	}
}

func TestDeleteTask(t *testing.T) {
	st := newTestState()
	task, _ := st.CreateTask(TaskDraft{Title: "gone"})
	st.DeleteTask(task.ID)
	if len(st.Tasks) != 0 {
		t.Error("task not deleted")
	}
	st.DeleteTask("missing")
}
