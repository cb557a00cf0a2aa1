package calendar

import "github.com/privatetick/privatetick/internal/model"

// gestureState enumerates the interaction machine's states. Selecting
// and dragging are mutually exclusive: a press on a task never starts a
// selection.
type gestureState int

const (
	stateIdle gestureState = iota
	stateSelecting
	stateDragging
)

// Gesture is the transient interaction state over the month grid. It
// must be fully reset on every completed or aborted gesture; the Release
// and Cancel transitions guarantee that.
type Gesture struct {
	state gestureState

	// Selection: anchor is the pressed cell, current the last entered.
	anchor  string
	current string

	// Drag: the picked-up task and the occupied date it was grabbed on.
	task       model.Task
	sourceDate string
}

// Selection is an inclusive date range produced by a completed
// range-select gesture.
type Selection struct {
	Start string
	End   string
}

// Drop is a completed drag: shift both ends of the task's range by
// DeltaDays.
type Drop struct {
	Task      model.Task
	DeltaDays int
}

// Idle reports whether no gesture is in progress.
func (g *Gesture) Idle() bool {
	return g.state == stateIdle
}

// Selecting reports whether a range selection is in progress.
func (g *Gesture) Selecting() bool {
	return g.state == stateSelecting
}

// Dragging reports whether a task drag is in progress, and which task.
func (g *Gesture) Dragging() (model.Task, bool) {
	if g.state != stateDragging {
		return model.Task{}, false
	}
	return g.task, true
}

// SelectionRange returns the normalized in-progress selection range.
func (g *Gesture) SelectionRange() (Selection, bool) {
	if g.state != stateSelecting {
		return Selection{}, false
	}
	start, end := g.anchor, g.current
	if end < start {
		start, end = end, start
	}
	return Selection{Start: start, End: end}, true
}

// PressCell starts a range selection from an empty area of a day cell.
// Presses during another gesture are ignored.
func (g *Gesture) PressCell(date string) {
	if g.state != stateIdle {
		return
	}
	g.state = stateSelecting
	g.anchor = date
	g.current = date
}

// PressTask picks up a task from the date segment it was grabbed on.
func (g *Gesture) PressTask(task model.Task, segmentDate string) {
	if g.state != stateIdle {
		return
	}
	g.state = stateDragging
	g.task = task
	g.sourceDate = segmentDate
}

// Enter extends the in-progress selection to the given cell. It has no
// effect while idle or dragging.
func (g *Gesture) Enter(date string) {
	if g.state == stateSelecting {
		g.current = date
	}
}

// Release completes the gesture on a day cell. A selection yields its
// inclusive range (a click without drag yields a single-day range); a
// drag yields a Drop whose delta is the calendar-day difference between
// the grab segment and the target. Either way the machine returns to
// idle.
func (g *Gesture) Release(date string) (*Selection, *Drop) {
	switch g.state {
	case stateSelecting:
		sel, _ := g.SelectionRange()
		g.reset()
		return &sel, nil
	case stateDragging:
		drop := &Drop{
			Task:      g.task,
			DeltaDays: model.DaysBetween(g.sourceDate, date),
		}
		g.reset()
		return nil, drop
	default:
		return nil, nil
	}
}

// Cancel aborts any in-progress gesture, e.g. a release outside the
// grid. No stale state survives.
func (g *Gesture) Cancel() {
	g.reset()
}

func (g *Gesture) reset() {
	*g = Gesture{}
}

// Reschedule returns the task with both ends of its date range shifted
// by deltaDays, preserving the span length. Undated tasks are returned
// unchanged.
func Reschedule(task model.Task, deltaDays int) model.Task {
	if task.DueDate == "" || deltaDays == 0 {
		return task
	}
	start := task.RangeStart()
	task.StartDate = model.AddDays(start, deltaDays)
	task.DueDate = model.AddDays(task.DueDate, deltaDays)
	return task
}
