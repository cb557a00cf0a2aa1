package state

import (
	"fmt"
	"strings"

	"github.com/privatetick/privatetick/internal/model"
)

// ListUpdate carries the optional fields of a partial list update; nil
// means leave the field unchanged.
type ListUpdate struct {
	Name    *string
	Color   *string
	GroupID *string
}

// CreateList adds a new custom list. An empty color picks a random
// palette entry; an empty groupID leaves the list at root level.
func (st *State) CreateList(name, groupID, color string) (model.TaskList, error) {
	if strings.TrimSpace(name) == "" {
		return model.TaskList{}, ErrEmptyTitle
	}
	if color == "" {
		color = model.RandomListColor()
	}

	list := model.TaskList{
		ID:      st.genID(),
		Name:    name,
		Type:    model.ListTypeCustom,
		Color:   color,
		GroupID: groupID,
	}
	st.Lists = append(st.Lists, list)
	st.dirtyLists = true
	return list, nil
}

// UpdateList applies a partial update to a list.
func (st *State) UpdateList(id string, upd ListUpdate) error {
	for i := range st.Lists {
		if st.Lists[i].ID != id {
			continue
		}
		if upd.Name != nil {
			if strings.TrimSpace(*upd.Name) == "" {
				return ErrEmptyTitle
			}
			st.Lists[i].Name = *upd.Name
		}
		if upd.Color != nil {
			st.Lists[i].Color = *upd.Color
		}
		if upd.GroupID != nil {
			st.Lists[i].GroupID = *upd.GroupID
		}
		st.dirtyLists = true
		return nil
	}
	return fmt.Errorf("list %s not found", id)
}

// DeleteList removes a list and reassigns its tasks to the inbox in the
// same transition. Tasks are never deleted by list deletion.
func (st *State) DeleteList(id string) {
	idx := -1
	for i := range st.Lists {
		if st.Lists[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	st.Lists = append(st.Lists[:idx], st.Lists[idx+1:]...)
	st.dirtyLists = true

	for i := range st.Tasks {
		if st.Tasks[i].ListID == id {
			st.Tasks[i].ListID = model.InboxListID
			st.dirtyTasks = true
		}
	}
}

// List returns the list with the given id.
func (st *State) List(id string) (model.TaskList, bool) {
	for _, l := range st.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return model.TaskList{}, false
}

// ListsInGroup returns the lists belonging to a group; pass "" for the
// root-level lists.
func (st *State) ListsInGroup(groupID string) []model.TaskList {
	var out []model.TaskList
	for _, l := range st.Lists {
		if l.GroupID == groupID {
			out = append(out, l)
		}
	}
	return out
}

// CreateGroup adds a new folder.
func (st *State) CreateGroup(name string) (model.ListGroup, error) {
	if strings.TrimSpace(name) == "" {
		return model.ListGroup{}, ErrEmptyTitle
	}
	group := model.ListGroup{ID: st.genID(), Name: name}
	st.Groups = append(st.Groups, group)
	st.dirtyGroups = true
	return group, nil
}

// DeleteGroup removes a folder and ungroups (never deletes) every list
// that referenced it, in the same transition.
func (st *State) DeleteGroup(id string) {
	idx := -1
	for i := range st.Groups {
		if st.Groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	st.Groups = append(st.Groups[:idx], st.Groups[idx+1:]...)
	st.dirtyGroups = true

	for i := range st.Lists {
		if st.Lists[i].GroupID == id {
			st.Lists[i].GroupID = ""
			st.dirtyLists = true
		}
	}
}
