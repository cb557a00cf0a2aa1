package state

import (
	"fmt"
	"io"

	"github.com/privatetick/privatetick/internal/importer"
)

// Import parses a TickTick backup and merges it into the current state.
// It returns the number of tasks imported. The operation is all or
// nothing: a parse failure leaves every collection untouched.
func (st *State) Import(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading import file: %w", err)
	}

	res, err := importer.Parse(string(data), st.genID)
	if err != nil {
		return 0, err
	}

	return st.merge(res), nil
}

// merge folds parsed entities into the collections: groups merge by
// name, lists by (name, group) with imported tasks re-pointed at the
// surviving list, and tasks are always appended, never deduplicated.
func (st *State) merge(res *importer.Result) int {
	// Groups merge by name. Imported ids that collapse onto an
	// existing group are remapped so list references stay valid.
	groupRemap := make(map[string]string)
	existingGroups := make(map[string]string)
	for _, g := range st.Groups {
		existingGroups[g.Name] = g.ID
	}
	for _, g := range res.Groups {
		if id, ok := existingGroups[g.Name]; ok {
			groupRemap[g.ID] = id
			continue
		}
		st.Groups = append(st.Groups, g)
		existingGroups[g.Name] = g.ID
		st.dirtyGroups = true
	}

	// Lists merge by (name, group) after group remapping; tasks that
	// referenced a dropped duplicate are re-pointed below.
	listRemap := make(map[string]string)
	for _, l := range res.Lists {
		if id, ok := groupRemap[l.GroupID]; ok {
			l.GroupID = id
		}

		merged := false
		for _, existing := range st.Lists {
			if existing.Name == l.Name && existing.GroupID == l.GroupID {
				listRemap[l.ID] = existing.ID
				merged = true
				break
			}
		}
		if !merged {
			st.Lists = append(st.Lists, l)
			st.dirtyLists = true
		}
	}

	for _, t := range res.Tasks {
		if id, ok := listRemap[t.ListID]; ok {
			t.ListID = id
		}
		st.Tasks = append(st.Tasks, t)
		st.dirtyTasks = true
	}

	return len(res.Tasks)
}
