package sidebar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/privatetick/privatetick/internal/keys"
	"github.com/privatetick/privatetick/internal/model"
)

func newTestSidebar() Model {
	m := New(keys.DefaultKeyMap(), 26, 24)
	m.SetData(
		[]model.TaskList{
			{ID: "l1", Name: "Reports", GroupID: "g1"},
			{ID: "l2", Name: "Meetings", GroupID: "g1"},
			{ID: "l3", Name: "Errands"},
		},
		[]model.ListGroup{{ID: "g1", Name: "Work"}},
	)
	return m
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestCollapseHidesGroupedLists(t *testing.T) {
	m := newTestSidebar()
	if len(m.entries) != 8 {
		t.Fatalf("got %d entries, want 8 (4 smart views, group, 3 lists)", len(m.entries))
	}

	// Row 4 is the Work group header.
	m.cursor = 4
	m, _ = m.Update(enter())
	if len(m.entries) != 6 {
		t.Fatalf("got %d entries after collapse, want 6", len(m.entries))
	}
	for _, e := range m.entries {
		if e.kind == entryList && e.list.GroupID == "g1" {
			t.Errorf("collapsed group still shows list %s", e.list.Name)
		}
	}
	if !strings.Contains(m.View(), "▸") {
		t.Error("collapsed group not marked in the rendered sidebar")
	}

	m, _ = m.Update(enter())
	if len(m.entries) != 8 {
		t.Fatalf("got %d entries after expand, want 8", len(m.entries))
	}
}

func TestCollapseSurvivesSetData(t *testing.T) {
	m := newTestSidebar()
	m.cursor = 4
	m, _ = m.Update(enter())

	m.SetData(
		[]model.TaskList{
			{ID: "l1", Name: "Reports", GroupID: "g1"},
			{ID: "l3", Name: "Errands"},
		},
		[]model.ListGroup{{ID: "g1", Name: "Work"}},
	)
	for _, e := range m.entries {
		if e.kind == entryList && e.list.GroupID == "g1" {
			t.Error("SetData reopened a collapsed group")
		}
	}
}

func TestEnterOnListActivatesView(t *testing.T) {
	m := newTestSidebar()
	m.cursor = 7 // Errands
	_, cmd := m.Update(enter())
	if cmd == nil {
		t.Fatal("expected a view selection command")
	}
	sel, ok := cmd().(ViewSelectedMsg)
	if !ok {
		t.Fatalf("expected ViewSelectedMsg, got %T", cmd())
	}
	if sel.View.ListID != "l3" {
		t.Errorf("selected list %s, want l3", sel.View.ListID)
	}
}
