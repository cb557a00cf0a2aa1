// Package view implements the smart-view filter engine: one global sort
// order plus the filtering semantics of each built-in and custom view.
package view

import (
	"sort"

	"github.com/privatetick/privatetick/internal/model"
)

// Kind discriminates the closed set of views.
type Kind int

const (
	KindInbox Kind = iota
	KindToday
	KindWeek
	KindCalendar
	KindCustom
)

// View identifies what the task pane is showing. ListID is set only for
// KindCustom.
type View struct {
	Kind   Kind
	ListID string
}

// The four built-in smart views.
var (
	Inbox    = View{Kind: KindInbox}
	Today    = View{Kind: KindToday}
	Week     = View{Kind: KindWeek}
	Calendar = View{Kind: KindCalendar}
)

// Custom returns the view for a user-created list.
func Custom(listID string) View {
	return View{Kind: KindCustom, ListID: listID}
}

// Parse maps a raw view id string onto the closed View type. Anything
// that is not a built-in id is a custom list id.
func Parse(id string) View {
	switch id {
	case "inbox":
		return Inbox
	case "today":
		return Today
	case "week":
		return Week
	case "calendar":
		return Calendar
	default:
		return Custom(id)
	}
}

// Title returns the display name of a view. Custom views resolve their
// name through the given lists.
func (v View) Title(lists []model.TaskList) string {
	switch v.Kind {
	case KindInbox:
		return "Inbox"
	case KindToday:
		return "Today"
	case KindWeek:
		return "Next 7 Days"
	case KindCalendar:
		return "Calendar"
	default:
		for _, l := range lists {
			if l.ID == v.ListID {
				return l.Name
			}
		}
		return "List"
	}
}

// Sort orders tasks by the single global order reused by every view:
// incomplete before completed, then priority descending, then creation
// time descending. The sort is stable.
func Sort(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.CreatedAt > b.CreatedAt
	})
	return sorted
}

// Select returns the sorted, filtered tasks for a view as of the given
// day. The calendar view returns nothing here; it is rendered by the
// calendar engine instead.
func Select(tasks []model.Task, v View, today string) []model.Task {
	sorted := Sort(tasks)

	var out []model.Task
	switch v.Kind {
	case KindInbox:
		for _, t := range sorted {
			if t.ListID == model.InboxListID && !t.IsCompleted {
				out = append(out, t)
			}
		}
	case KindToday:
		for _, t := range sorted {
			if t.IsCompleted || t.DueDate == "" {
				continue
			}
			if t.OccupiesDay(today) {
				out = append(out, t)
			}
		}
	case KindWeek:
		weekEnd := model.AddDays(today, 7)
		for _, t := range sorted {
			if t.IsCompleted || t.DueDate == "" {
				continue
			}
			if model.RangesOverlap(t.RangeStart(), t.DueDate, today, weekEnd) {
				out = append(out, t)
			}
		}
	case KindCalendar:
		// Rendered by the calendar engine.
	case KindCustom:
		for _, t := range sorted {
			if t.ListID == v.ListID && !t.IsCompleted {
				out = append(out, t)
			}
		}
	}
	return out
}

// Completed returns the secondary completed bucket shown under custom
// list views. Smart views never show one.
func Completed(tasks []model.Task, v View) []model.Task {
	if v.Kind != KindCustom {
		return nil
	}
	var out []model.Task
	for _, t := range Sort(tasks) {
		if t.ListID == v.ListID && t.IsCompleted {
			out = append(out, t)
		}
	}
	return out
}
