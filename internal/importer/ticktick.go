// Package importer parses TickTick backup CSV files into domain records.
// The format is defensive territory: the file carries preamble lines
// before the header row, quoted fields with embedded commas, doubled
// quotes as escapes, and content whose details (subtask completion,
// timezone) are not fully recoverable. Per-field problems degrade to
// safe defaults; only a missing header aborts.
package importer

import (
	"errors"
	"strings"
	"time"

	"github.com/privatetick/privatetick/internal/model"
)

// ErrInvalidFormat reports a file that is not a TickTick backup CSV.
var ErrInvalidFormat = errors.New("invalid TickTick CSV format")

// headerPrefix identifies the header row among the preamble lines.
const headerPrefix = `"Folder Name"`

// Fixed column positions in a TickTick export row.
const (
	colFolderName = 0
	colListName   = 1
	colTitle      = 2
	colKind       = 3
	colContent    = 5
	colChecklist  = 6
	colStartDate  = 7
	colDueDate    = 8
	colPriority   = 11
	colStatus     = 12
	colCreated    = 13

	columnCount = 24
)

// Result holds the entities parsed from one backup file. List and group
// ids are freshly generated; tasks reference them (or the reserved inbox
// id) through ListID.
type Result struct {
	Tasks  []model.Task
	Lists  []model.TaskList
	Groups []model.ListGroup
}

// Parse reads a TickTick backup CSV. It fails only when the header row
// is missing; malformed fields within a row fall back to defaults.
// genID supplies ids for the created entities.
func Parse(text string, genID func() string) (*Result, error) {
	lines := strings.Split(text, "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, headerPrefix) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrInvalidFormat
	}

	res := &Result{}
	groupsByName := make(map[string]string)  // folder name -> group id
	listsByKey := make(map[[2]string]string) // (folder, list) -> list id

	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := splitQuoted(line)

		row := func(i int) string {
			if i < len(cols) {
				return cols[i]
			}
			return ""
		}

		// Folder -> group, keyed by name.
		groupID := ""
		if folder := row(colFolderName); folder != "" {
			id, ok := groupsByName[folder]
			if !ok {
				id = genID()
				groupsByName[folder] = id
				res.Groups = append(res.Groups, model.ListGroup{ID: id, Name: folder})
			}
			groupID = id
		}

		// List -> task list, keyed by (folder, list). The literal
		// "Inbox" maps to the reserved inbox id.
		listID := model.InboxListID
		if name := row(colListName); name != "" && name != "Inbox" {
			key := [2]string{row(colFolderName), name}
			id, ok := listsByKey[key]
			if !ok {
				id = genID()
				listsByKey[key] = id
				res.Lists = append(res.Lists, model.TaskList{
					ID:      id,
					Name:    name,
					Type:    model.ListTypeCustom,
					Color:   model.DefaultListColor,
					GroupID: groupID,
				})
			}
			listID = id
		}

		task := model.Task{
			ID:          genID(),
			Title:       row(colTitle),
			Description: row(colContent),
			Priority:    mapPriority(row(colPriority)),
			StartDate:   parseDate(row(colStartDate)),
			DueDate:     parseDate(row(colDueDate)),
			ListID:      listID,
			IsCompleted: row(colStatus) != "" && row(colStatus) != "0",
			CreatedAt:   parseCreated(row(colCreated)),
		}

		if row(colChecklist) == "Y" || row(colKind) == "CHECKLIST" {
			task.IsChecklistMode = true
			task.Subtasks = splitChecklist(task.Description, genID)
			task.Description = ""
		}

		res.Tasks = append(res.Tasks, task)
	}

	return res, nil
}

// splitQuoted splits one CSV line on commas outside quotes. A doubled
// quote inside a quoted field is an escaped literal quote.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			if inQuote && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case c == ',' && !inQuote:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// dateLayouts are the timestamp shapes seen in TickTick exports.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate converts a source timestamp to a local calendar date,
// discarding time of day. Unparseable input yields absent.
func parseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t.Format(model.DateLayout)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local().Format(model.DateLayout)
		}
	}
	return ""
}

// parseCreated converts the created-time column to epoch milliseconds,
// falling back to now.
func parseCreated(s string) int64 {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UnixMilli()
			}
		}
	}
	return time.Now().UnixMilli()
}

// mapPriority maps TickTick's 0/1/3/5 scale onto the internal levels.
// Unknown codes default to none.
func mapPriority(code string) int {
	switch strings.TrimSpace(code) {
	case "1":
		return model.PriorityLow
	case "3":
		return model.PriorityMedium
	case "5":
		return model.PriorityHigh
	default:
		return model.PriorityNone
	}
}

// splitChecklist breaks a checklist content field into subtasks. Exports
// separate items with ▪/▫ bullet markers when present, otherwise with
// newlines. Completion state is not recoverable from the source format,
// so imported subtasks start incomplete.
func splitChecklist(content string, genID func() string) []model.Subtask {
	if content == "" {
		return nil
	}

	var items []string
	if strings.ContainsAny(content, "▪▫") {
		items = strings.FieldsFunc(content, func(r rune) bool {
			return r == '▪' || r == '▫'
		})
	} else {
		items = strings.Split(content, "\n")
	}

	var subs []model.Subtask
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		subs = append(subs, model.Subtask{ID: genID(), Title: item})
	}
	return subs
}
