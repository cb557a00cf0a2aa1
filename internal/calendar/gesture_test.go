package calendar

import (
	"testing"
	"time"

	"github.com/privatetick/privatetick/internal/model"
)

func TestGestureSelectRange(t *testing.T) {
	var g Gesture

	g.PressCell("2024-06-03")
	if !g.Selecting() {
		t.Fatal("expected selecting state after PressCell")
	}

	g.Enter("2024-06-06")
	r, ok := g.SelectionRange()
	if !ok || r.Start != "2024-06-03" || r.End != "2024-06-06" {
		t.Errorf("range = %+v, want [2024-06-03, 2024-06-06]", r)
	}

	sel, drop := g.Release("2024-06-06")
	if drop != nil {
		t.Fatal("unexpected drop from a cell selection")
	}
	if sel == nil || sel.Start != "2024-06-03" || sel.End != "2024-06-06" {
		t.Errorf("selection = %+v, want [2024-06-03, 2024-06-06]", sel)
	}
	if !g.Idle() {
		t.Error("gesture should reset to idle after release")
	}
}

func TestGestureSelectReversed(t *testing.T) {
	var g Gesture

	g.PressCell("2024-06-10")
	g.Enter("2024-06-07")
	sel, _ := g.Release("2024-06-07")
	if sel == nil || sel.Start != "2024-06-07" || sel.End != "2024-06-10" {
		t.Errorf("selection = %+v, want normalized [2024-06-07, 2024-06-10]", sel)
	}
}

func TestGestureSingleDayClick(t *testing.T) {
	var g Gesture

	g.PressCell("2024-06-15")
	sel, _ := g.Release("2024-06-15")
	if sel == nil || sel.Start != "2024-06-15" || sel.End != "2024-06-15" {
		t.Errorf("selection = %+v, want single day 2024-06-15", sel)
	}
}

func TestGestureDragTask(t *testing.T) {
	var g Gesture
	task := model.Task{ID: "t1", StartDate: "2024-06-01", DueDate: "2024-06-03"}

	g.PressTask(task, "2024-06-01")
	if dragged, ok := g.Dragging(); !ok || dragged.ID != "t1" {
		t.Fatal("expected dragging state after PressTask")
	}

	sel, drop := g.Release("2024-06-04")
	if sel != nil {
		t.Fatal("unexpected selection from a task drag")
	}
	if drop == nil || drop.Task.ID != "t1" || drop.DeltaDays != 3 {
		t.Fatalf("drop = %+v, want task t1 delta 3", drop)
	}

	moved := Reschedule(drop.Task, drop.DeltaDays)
	if moved.StartDate != "2024-06-04" || moved.DueDate != "2024-06-06" {
		t.Errorf("rescheduled to [%s, %s], want [2024-06-04, 2024-06-06]",
			moved.StartDate, moved.DueDate)
	}
	if !g.Idle() {
		t.Error("gesture should reset to idle after drop")
	}
}

func TestGestureDragToSameDay(t *testing.T) {
	var g Gesture
	task := model.Task{ID: "t1", DueDate: "2024-06-02"}

	g.PressTask(task, "2024-06-02")
	sel, drop := g.Release("2024-06-02")
	if sel != nil {
		t.Error("task press must never produce a selection")
	}
	if drop == nil || drop.DeltaDays != 0 {
		t.Errorf("drop = %+v, want zero delta", drop)
	}
}

func TestGestureCancel(t *testing.T) {
	var g Gesture

	g.PressCell("2024-06-01")
	g.Enter("2024-06-05")
	g.Cancel()
	if !g.Idle() {
		t.Error("cancel should return to idle")
	}

	sel, drop := g.Release("2024-06-05")
	if sel != nil || drop != nil {
		t.Error("release after cancel should produce nothing")
	}
}

func TestGesturePressIgnoredWhileActive(t *testing.T) {
	var g Gesture

	g.PressCell("2024-06-01")
	g.PressTask(model.Task{ID: "t1"}, "2024-06-02")
	if !g.Selecting() {
		t.Error("task press during a selection should be ignored")
	}
}

func TestRescheduleDueOnly(t *testing.T) {
	task := model.Task{ID: "t1", DueDate: "2024-06-10"}
	moved := Reschedule(task, -3)
	if moved.DueDate != "2024-06-07" || moved.StartDate != "2024-06-07" {
		t.Errorf("moved = [%q, %q], want single day 2024-06-07", moved.StartDate, moved.DueDate)
	}
}

func TestWheelThrottle(t *testing.T) {
	now := time.Unix(0, 0)
	w := NewWheelThrottle(300 * time.Millisecond)
	w.now = func() time.Time { return now }

	if !w.Allow() {
		t.Fatal("first event should pass")
	}
	now = now.Add(100 * time.Millisecond)
	if w.Allow() {
		t.Error("event inside the window should be dropped")
	}
	now = now.Add(250 * time.Millisecond)
	if !w.Allow() {
		t.Error("event after the window should pass")
	}
}
