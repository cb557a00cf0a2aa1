package calendarview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/privatetick/privatetick/internal/calendar"
	"github.com/privatetick/privatetick/internal/keys"
)

// newTestModel returns a calendar fixed on June 2024 (6 grid weeks),
// 70x20 cells, drawn right of a 26-column sidebar and below a 1-row
// header. Cell width is 10 and cell height 3.
func newTestModel() Model {
	m := New(keys.DefaultKeyMap(), time.Millisecond, 70, 20)
	m.grid = calendar.NewMonthGrid(2024, time.June)
	m.SetOrigin(26, 1)
	return m
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestClickTranslatesScreenCoordinates(t *testing.T) {
	m := newTestModel()

	// June 3rd sits at column 1 of the second grid week: screen
	// column 26+10, screen row 1+2+3.
	m, _ = m.Update(mouse(36, 6, tea.MouseActionPress))
	_, cmd := m.Update(mouse(36, 6, tea.MouseActionRelease))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	sel, ok := cmd().(RangeSelectedMsg)
	if !ok {
		t.Fatalf("expected RangeSelectedMsg, got %T", cmd())
	}
	if sel.Start != "2024-06-03" || sel.End != "2024-06-03" {
		t.Errorf("selected [%s, %s], want [2024-06-03, 2024-06-03]", sel.Start, sel.End)
	}
}

func TestDragSelectionAcrossDays(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(mouse(36, 6, tea.MouseActionPress))
	m, _ = m.Update(mouse(56, 6, tea.MouseActionMotion))
	_, cmd := m.Update(mouse(56, 6, tea.MouseActionRelease))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	sel, ok := cmd().(RangeSelectedMsg)
	if !ok {
		t.Fatalf("expected RangeSelectedMsg, got %T", cmd())
	}
	if sel.Start != "2024-06-03" || sel.End != "2024-06-05" {
		t.Errorf("selected [%s, %s], want [2024-06-03, 2024-06-05]", sel.Start, sel.End)
	}
}

func TestClickInSidebarRegionIgnored(t *testing.T) {
	m := newTestModel()

	m, cmd := m.Update(mouse(2, 6, tea.MouseActionPress))
	if cmd != nil {
		t.Fatal("press left of the calendar started a gesture")
	}
	if !m.gesture.Idle() {
		t.Fatal("gesture no longer idle after sidebar press")
	}
	_, cmd = m.Update(mouse(2, 6, tea.MouseActionRelease))
	if cmd != nil {
		t.Fatal("release left of the calendar produced a command")
	}
}

func TestClickInHeaderRowIgnored(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(mouse(36, 0, tea.MouseActionPress))
	if !m.gesture.Idle() {
		t.Fatal("gesture started from the header row")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	cases := []struct {
		in   string
		w    int
		want string
	}{
		{"groceries", 5, "groce"},
		{"groceries", 20, "groceries"},
		{"買い物リスト", 3, "買い物"},
		{"task", 0, ""},
		{"task", -1, ""},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.w); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.w, got, c.want)
		}
	}
}
