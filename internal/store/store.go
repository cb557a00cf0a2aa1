package store

import (
	"github.com/privatetick/privatetick/internal/model"
)

// Store defines the persistence contract for the three entity collections.
// Each collection is loaded and saved whole; callers own the in-memory
// state and write it back after mutating.
type Store interface {
	LoadTasks() ([]model.Task, error)
	SaveTasks(tasks []model.Task) error

	LoadLists() ([]model.TaskList, error)
	SaveLists(lists []model.TaskList) error

	LoadGroups() ([]model.ListGroup, error)
	SaveGroups(groups []model.ListGroup) error

	// GenerateID returns a collision-resistant identifier, stable for
	// the lifetime of the entity it is assigned to.
	GenerateID() string

	Close() error
}
