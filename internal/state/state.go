// Package state owns the in-memory entity collections and every mutation
// the UI can perform on them. Mutations are synchronous and atomic from
// the caller's perspective; dirty flags record which collections need to
// be written back to the store.
package state

import (
	"errors"
	"fmt"

	"github.com/privatetick/privatetick/internal/model"
	"github.com/privatetick/privatetick/internal/store"
)

// ErrEmptyTitle rejects a save with a blank title. Callers treat it as a
// silent no-op rather than surfacing an error to the user.
var ErrEmptyTitle = errors.New("title must not be empty")

// State holds the three entity collections and an id generator.
type State struct {
	Tasks  []model.Task
	Lists  []model.TaskList
	Groups []model.ListGroup

	genID func() string

	dirtyTasks  bool
	dirtyLists  bool
	dirtyGroups bool
}

// New builds a State around existing collections. genID must produce
// collision-resistant identifiers.
func New(tasks []model.Task, lists []model.TaskList, groups []model.ListGroup, genID func() string) *State {
	return &State{
		Tasks:  tasks,
		Lists:  lists,
		Groups: groups,
		genID:  genID,
	}
}

// Load reads all three collections from the store.
func Load(s store.Store) (*State, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	lists, err := s.LoadLists()
	if err != nil {
		return nil, fmt.Errorf("loading lists: %w", err)
	}
	groups, err := s.LoadGroups()
	if err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	return New(tasks, lists, groups, s.GenerateID), nil
}

// Save writes back every collection mutated since the last save.
func (st *State) Save(s store.Store) error {
	if st.dirtyTasks {
		if err := s.SaveTasks(st.Tasks); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		st.dirtyTasks = false
	}
	if st.dirtyLists {
		if err := s.SaveLists(st.Lists); err != nil {
			return fmt.Errorf("saving lists: %w", err)
		}
		st.dirtyLists = false
	}
	if st.dirtyGroups {
		if err := s.SaveGroups(st.Groups); err != nil {
			return fmt.Errorf("saving groups: %w", err)
		}
		st.dirtyGroups = false
	}
	return nil
}

// Dirty reports whether any collection has unsaved changes.
func (st *State) Dirty() bool {
	return st.dirtyTasks || st.dirtyLists || st.dirtyGroups
}
