package store

import (
	"testing"

	"github.com/privatetick/privatetick/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})
	return s
}

func TestEmptyStoreYieldsSeedData(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("loading tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 seed tasks, got %d", len(tasks))
	}

	lists, err := s.LoadLists()
	if err != nil {
		t.Fatalf("loading lists: %v", err)
	}
	if len(lists) != 3 {
		t.Errorf("expected 3 seed lists, got %d", len(lists))
	}
	ungrouped := 0
	for _, l := range lists {
		if l.GroupID == "" {
			ungrouped++
		}
	}
	if ungrouped != 1 {
		t.Errorf("expected 1 ungrouped seed list, got %d", ungrouped)
	}

	groups, err := s.LoadGroups()
	if err != nil {
		t.Fatalf("loading groups: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("expected 2 seed groups, got %d", len(groups))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	tasks := []model.Task{
		{
			ID:       "t1",
			Title:    "write report",
			Priority: model.PriorityHigh,
			DueDate:  "2024-06-05",
			ListID:   model.InboxListID,
			Subtasks: []model.Subtask{{ID: "s1", Title: "outline", IsCompleted: true}},
		},
	}
	if err := s.SaveTasks(tasks); err != nil {
		t.Fatalf("saving tasks: %v", err)
	}

	loaded, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("loading tasks: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 task, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != "t1" || got.Title != "write report" || got.DueDate != "2024-06-05" {
		t.Errorf("task fields lost in round trip: %+v", got)
	}
	if len(got.Subtasks) != 1 || !got.Subtasks[0].IsCompleted {
		t.Errorf("subtasks lost in round trip: %+v", got.Subtasks)
	}
}

func TestSaveEmptyCollectionIsNotSeed(t *testing.T) {
	s := newTestStore(t)

	// Once an empty collection is stored, the seed must not reappear.
	if err := s.SaveTasks([]model.Task{}); err != nil {
		t.Fatalf("saving tasks: %v", err)
	}
	tasks, err := s.LoadTasks()
	if err != nil {
		t.Fatalf("loading tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected stored empty collection, got %d tasks", len(tasks))
	}
}

func TestGenerateIDUnique(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.GenerateID()
		if id == "" {
			t.Fatal("empty id generated")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
