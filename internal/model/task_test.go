package model

import (
	"fmt"
	"testing"
)

func testIDGen() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestConvertToText(t *testing.T) {
	task := Task{
		IsChecklistMode: true,
		Subtasks: []Subtask{
			{ID: "s1", Title: "a", IsCompleted: true},
			{ID: "s2", Title: "b", IsCompleted: false},
		},
	}

	task.ConvertToText()

	if task.IsChecklistMode {
		t.Error("expected checklist mode off after conversion")
	}
	if task.Description != "[x] a\nb" {
		t.Errorf("description = %q, want %q", task.Description, "[x] a\nb")
	}
	if len(task.Subtasks) != 0 {
		t.Errorf("expected subtasks cleared, got %d", len(task.Subtasks))
	}
}

func TestConvertToChecklist(t *testing.T) {
	task := Task{Description: "[x] a\nb"}

	task.ConvertToChecklist(testIDGen())

	if !task.IsChecklistMode {
		t.Error("expected checklist mode on after conversion")
	}
	if task.Description != "" {
		t.Errorf("expected description cleared, got %q", task.Description)
	}
	if len(task.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(task.Subtasks))
	}
	if task.Subtasks[0].Title != "a" || !task.Subtasks[0].IsCompleted {
		t.Errorf("subtask 0 = %+v, want title a completed", task.Subtasks[0])
	}
	if task.Subtasks[1].Title != "b" || task.Subtasks[1].IsCompleted {
		t.Errorf("subtask 1 = %+v, want title b incomplete", task.Subtasks[1])
	}
}

func TestConvertToChecklist_CaseAndBlankLines(t *testing.T) {
	task := Task{Description: "[X] Done item\n\n  \nopen item"}

	task.ConvertToChecklist(testIDGen())

	if len(task.Subtasks) != 2 {
		t.Fatalf("expected blank lines skipped, got %d subtasks", len(task.Subtasks))
	}
	if task.Subtasks[0].Title != "Done item" || !task.Subtasks[0].IsCompleted {
		t.Errorf("marker should be case-insensitive and stripped, got %+v", task.Subtasks[0])
	}
}

func TestChecklistRoundTrip(t *testing.T) {
	task := Task{
		IsChecklistMode: true,
		Subtasks: []Subtask{
			{ID: "s1", Title: "a", IsCompleted: true},
			{ID: "s2", Title: "b", IsCompleted: false},
		},
	}

	task.ConvertToText()
	task.ConvertToChecklist(testIDGen())

	if len(task.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks after round trip, got %d", len(task.Subtasks))
	}
	if task.Subtasks[0].Title != "a" || !task.Subtasks[0].IsCompleted {
		t.Errorf("round trip lost completion state: %+v", task.Subtasks[0])
	}
	if task.Subtasks[1].Title != "b" || task.Subtasks[1].IsCompleted {
		t.Errorf("round trip corrupted open subtask: %+v", task.Subtasks[1])
	}
}

func TestApplyAutoComplete(t *testing.T) {
	task := Task{
		IsChecklistMode: true,
		Subtasks: []Subtask{
			{ID: "s1", Title: "a", IsCompleted: true},
			{ID: "s2", Title: "b", IsCompleted: true},
		},
	}

	task.ApplyAutoComplete()
	if !task.IsCompleted {
		t.Error("expected task auto-completed when all subtasks done")
	}

	// Reopening a subtask never uncompletes the task.
	task.Subtasks[0].IsCompleted = false
	task.ApplyAutoComplete()
	if !task.IsCompleted {
		t.Error("auto-complete must be one-directional")
	}
}

func TestApplyAutoComplete_EmptyChecklist(t *testing.T) {
	task := Task{IsChecklistMode: true}
	task.ApplyAutoComplete()
	if task.IsCompleted {
		t.Error("empty checklist must not auto-complete the task")
	}
}

func TestNormalizeDates(t *testing.T) {
	task := Task{StartDate: "2024-06-10", DueDate: "2024-06-01"}
	task.NormalizeDates()
	if task.StartDate != "2024-06-01" || task.DueDate != "2024-06-10" {
		t.Errorf("got [%s, %s], want inverted range swapped", task.StartDate, task.DueDate)
	}

	// A due-only task is untouched.
	task = Task{DueDate: "2024-06-01"}
	task.NormalizeDates()
	if task.StartDate != "" || task.DueDate != "2024-06-01" {
		t.Errorf("due-only task changed: %+v", task)
	}
}

func TestOccupiesDay(t *testing.T) {
	tests := []struct {
		name string
		task Task
		day  string
		want bool
	}{
		{"inside range", Task{StartDate: "2024-06-01", DueDate: "2024-06-05"}, "2024-06-03", true},
		{"start boundary", Task{StartDate: "2024-06-01", DueDate: "2024-06-05"}, "2024-06-01", true},
		{"end boundary", Task{StartDate: "2024-06-01", DueDate: "2024-06-05"}, "2024-06-05", true},
		{"after range", Task{StartDate: "2024-06-01", DueDate: "2024-06-05"}, "2024-06-06", false},
		{"due only same day", Task{DueDate: "2024-06-05"}, "2024-06-05", true},
		{"no due date", Task{StartDate: "2024-06-01"}, "2024-06-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.OccupiesDay(tt.day); got != tt.want {
				t.Errorf("OccupiesDay(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
