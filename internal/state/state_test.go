package state

import (
	"testing"

	"github.com/privatetick/privatetick/tests/testutil"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)

	st, err := Load(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Tasks) == 0 || len(st.Lists) == 0 {
		t.Fatal("expected seeded collections")
	}

	task, err := st.CreateTask(TaskDraft{Title: "persisted"})
	if err != nil {
		t.Fatal(err)
	}
	if !st.Dirty() {
		t.Fatal("create should mark state dirty")
	}
	if err := st.Save(s); err != nil {
		t.Fatal(err)
	}
	if st.Dirty() {
		t.Error("save should clear dirty flags")
	}

	reloaded, err := Load(s)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reloaded.Task(task.ID)
	if !ok || got.Title != "persisted" {
		t.Errorf("reloaded task = %+v, ok = %v", got, ok)
	}
}

func TestSaveWritesOnlyDirtyCollections(t *testing.T) {
	s := testutil.NewTestStore(t)

	st, err := Load(s)
	if err != nil {
		t.Fatal(err)
	}

	group, err := st.CreateGroup("Side Projects")
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(s); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(s)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, g := range reloaded.Groups {
		if g.ID == group.ID {
			found = true
		}
	}
	if !found {
		t.Error("group not persisted")
	}
}
