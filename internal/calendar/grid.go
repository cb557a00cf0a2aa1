// Package calendar maps tasks onto a month grid and drives the two
// interactive gestures over it: range selection to create a dated task
// and drag-to-reschedule.
package calendar

import (
	"fmt"
	"time"

	"github.com/privatetick/privatetick/internal/model"
)

// Cell is one slot of the month grid. Padding cells before day 1 and
// after the last day carry an empty Date.
type Cell struct {
	// Date is the ISO date of the cell, "" for padding.
	Date string
	Day  int
}

// IsPad reports whether the cell is a filler outside the month.
func (c Cell) IsPad() bool {
	return c.Date == ""
}

// MonthGrid is a month laid out on a 7-wide grid starting on Sunday.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// NewMonthGrid builds the grid for a month: leading pad cells up to the
// weekday of day 1, one cell per day, and trailing pad cells so the
// total is a multiple of 7.
func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	g := MonthGrid{Year: year, Month: month}
	for i := 0; i < int(first.Weekday()); i++ {
		g.Cells = append(g.Cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		g.Cells = append(g.Cells, Cell{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
			Day:  day,
		})
	}
	for len(g.Cells)%7 != 0 {
		g.Cells = append(g.Cells, Cell{})
	}
	return g
}

// Weeks returns the cells split into rows of seven.
func (g MonthGrid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// Title returns the "June 2024" style heading for the month.
func (g MonthGrid) Title() string {
	return fmt.Sprintf("%s %d", g.Month.String(), g.Year)
}

// Prev returns the grid for the previous month.
func (g MonthGrid) Prev() MonthGrid {
	y, m := g.Year, g.Month-1
	if m < time.January {
		y, m = y-1, time.December
	}
	return NewMonthGrid(y, m)
}

// Next returns the grid for the following month.
func (g MonthGrid) Next() MonthGrid {
	y, m := g.Year, g.Month+1
	if m > time.December {
		y, m = y+1, time.January
	}
	return NewMonthGrid(y, m)
}

// CurrentMonthGrid returns the grid containing today.
func CurrentMonthGrid() MonthGrid {
	now := time.Now()
	return NewMonthGrid(now.Year(), now.Month())
}

// Segment is one day-slice of a task bar on the grid. The title label is
// rendered only on the start segment; Start/End drive the bar's rounded
// edges.
type Segment struct {
	Task  model.Task
	Date  string
	Start bool
	End   bool
}

// SegmentsOn returns the task segments occupying a day, in input order.
// Tasks without a due date never appear.
func SegmentsOn(tasks []model.Task, date string) []Segment {
	var segs []Segment
	for _, t := range tasks {
		if !t.OccupiesDay(date) {
			continue
		}
		segs = append(segs, Segment{
			Task:  t,
			Date:  date,
			Start: t.RangeStart() == date,
			End:   t.DueDate == date,
		})
	}
	return segs
}
