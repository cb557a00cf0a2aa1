package model

import "math/rand"

// List types. Only custom lists are ever persisted; the built-in smart
// views (inbox, today, week, calendar) are not TaskList records.
const (
	ListTypeSmart  = "smart"
	ListTypeCustom = "custom"
)

// DefaultListColor is used when a list is created without an explicit color.
const DefaultListColor = "#3b82f6"

// TaskList is a user-defined named bucket that tasks are assigned to.
type TaskList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	// GroupID is the owning folder, "" for a root-level list.
	GroupID string `json:"group_id,omitempty"`
}

// ListGroup is a folder for organizing lists. It has no filtering
// semantics of its own.
type ListGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListPalette is the fixed set of colors offered for lists. New lists
// without an explicit color pick one at random.
var ListPalette = []string{
	"#dc2626", "#ea580c", "#d97706", "#65a30d", "#16a34a", "#059669", "#0891b2", "#2563eb", "#4f46e5", "#7c3aed", "#c026d3", "#db2777",
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#10b981", "#14b8a6", "#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6", "#d946ef", "#f43f5e",
	"#fca5a5", "#fdba74", "#fcd34d", "#bef264", "#86efac", "#5eead4", "#67e8f9", "#93c5fd", "#a5b4fc", "#c4b5fd", "#f0abfc", "#fda4af",
	"#9ca3af", "#d1d5db", "#b4b3a8", "#a8a29e", "#94a3b8", "#cbd5e1", "#99f6e4", "#7dd3fc", "#a7f3d0", "#fde047",
}

// RandomListColor returns a random palette entry.
func RandomListColor() string {
	return ListPalette[rand.Intn(len(ListPalette))]
}
