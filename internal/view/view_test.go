package view

import (
	"testing"

	"github.com/privatetick/privatetick/internal/model"
)

func TestSortOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: "done-high", IsCompleted: true, Priority: model.PriorityHigh, CreatedAt: 50},
		{ID: "open-low", Priority: model.PriorityLow, CreatedAt: 10},
		{ID: "open-high-old", Priority: model.PriorityHigh, CreatedAt: 20},
		{ID: "open-high-new", Priority: model.PriorityHigh, CreatedAt: 30},
	}

	sorted := Sort(tasks)

	want := []string{"open-high-new", "open-high-old", "open-low", "done-high"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, sorted[i].ID, id)
		}
	}

	// Input order is preserved.
	if tasks[0].ID != "done-high" {
		t.Error("Sort must not mutate its input")
	}
}

func TestSelectInbox(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", ListID: model.InboxListID},
		{ID: "b", ListID: model.InboxListID, IsCompleted: true},
		{ID: "c", ListID: "l1"},
	}

	got := Select(tasks, Inbox, "2024-06-01")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("inbox = %v, want only open inbox task a", ids(got))
	}
}

func TestSelectToday(t *testing.T) {
	task := model.Task{ID: "span", StartDate: "2024-06-01", DueDate: "2024-06-05"}

	if got := Select([]model.Task{task}, Today, "2024-06-03"); len(got) != 1 {
		t.Error("task spanning today should appear in the today view")
	}
	if got := Select([]model.Task{task}, Today, "2024-06-06"); len(got) != 0 {
		t.Error("task ending before today should not appear")
	}
	// Boundary days are inclusive.
	if got := Select([]model.Task{task}, Today, "2024-06-01"); len(got) != 1 {
		t.Error("start boundary should be inclusive")
	}
	if got := Select([]model.Task{task}, Today, "2024-06-05"); len(got) != 1 {
		t.Error("end boundary should be inclusive")
	}
}

func TestSelectWeek(t *testing.T) {
	task := model.Task{ID: "due", DueDate: "2024-06-10"}

	if got := Select([]model.Task{task}, Week, "2024-06-05"); len(got) != 1 {
		t.Error("task due within 7 days should appear in the week view")
	}
	if got := Select([]model.Task{task}, Week, "2024-05-01"); len(got) != 0 {
		t.Error("task due far in the future should not appear")
	}
	// today+7 is the inclusive window end.
	if got := Select([]model.Task{task}, Week, "2024-06-03"); len(got) != 1 {
		t.Error("task due exactly 7 days out should appear")
	}
}

func TestSelectExcludesUndatedAndCompleted(t *testing.T) {
	tasks := []model.Task{
		{ID: "undated"},
		{ID: "completed", DueDate: "2024-06-01", IsCompleted: true},
	}
	if got := Select(tasks, Today, "2024-06-01"); len(got) != 0 {
		t.Errorf("today = %v, want empty", ids(got))
	}
	if got := Select(tasks, Week, "2024-06-01"); len(got) != 0 {
		t.Errorf("week = %v, want empty", ids(got))
	}
}

func TestSelectCalendarIsEmpty(t *testing.T) {
	tasks := []model.Task{{ID: "a", DueDate: "2024-06-01"}}
	if got := Select(tasks, Calendar, "2024-06-01"); len(got) != 0 {
		t.Error("calendar view must delegate to the calendar engine")
	}
}

func TestCustomViewAndCompletedBucket(t *testing.T) {
	tasks := []model.Task{
		{ID: "open", ListID: "l1"},
		{ID: "done", ListID: "l1", IsCompleted: true},
		{ID: "other", ListID: "l2"},
	}

	v := Custom("l1")
	primary := Select(tasks, v, "2024-06-01")
	if len(primary) != 1 || primary[0].ID != "open" {
		t.Errorf("primary = %v, want [open]", ids(primary))
	}

	bucket := Completed(tasks, v)
	if len(bucket) != 1 || bucket[0].ID != "done" {
		t.Errorf("completed bucket = %v, want [done]", ids(bucket))
	}

	// Smart views never show a completed bucket.
	if got := Completed(tasks, Inbox); got != nil {
		t.Error("inbox must not have a completed bucket")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		id   string
		want View
	}{
		{"inbox", Inbox},
		{"today", Today},
		{"week", Week},
		{"calendar", Calendar},
		{"some-list-id", Custom("some-list-id")},
	}
	for _, tt := range tests {
		if got := Parse(tt.id); got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
