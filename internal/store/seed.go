package store

import (
	"time"

	"github.com/privatetick/privatetick/internal/model"
)

// Seed data returned when the store has never been written to. Ids are
// fixed so a fresh profile is reproducible.

func seedGroups() []model.ListGroup {
	return []model.ListGroup{
		{ID: "g_work", Name: "Work Projects"},
		{ID: "g_life", Name: "Personal Life"},
	}
}

func seedLists() []model.TaskList {
	return []model.TaskList{
		{ID: "l_groceries", Name: "Groceries", Type: model.ListTypeCustom, Color: "#3b82f6", GroupID: "g_life"},
		{ID: "l_goals", Name: "Q4 Goals", Type: model.ListTypeCustom, Color: "#ef4444", GroupID: "g_work"},
		{ID: "l_misc", Name: "Misc", Type: model.ListTypeCustom, Color: "#8b5cf6"},
	}
}

func seedTasks() []model.Task {
	today := model.Today()
	now := time.Now().UnixMilli()

	return []model.Task{
		{
			ID:          "t_welcome",
			Title:       "Welcome to PrivateTick",
			Description: "This data is stored locally in your profile. No external servers.",
			Priority:    model.PriorityHigh,
			StartDate:   today,
			DueDate:     today,
			ListID:      model.InboxListID,
			CreatedAt:   now,
		},
		{
			ID:              "t_focus",
			Title:           "Try the focus timer",
			IsChecklistMode: true,
			Subtasks: []model.Subtask{
				{ID: "st_open", Title: "Open the timer", IsCompleted: true},
				{ID: "st_start", Title: "Start a focus session", IsCompleted: false},
			},
			Priority:  model.PriorityMedium,
			ListID:    "l_groceries",
			CreatedAt: now,
		},
	}
}
