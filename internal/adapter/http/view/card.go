// Package view turns board state into the models the HTML templates render.
package view

import "taskboard/internal/core/domain"

// Card is the read-only display of one task.
type Card struct {
	ID          string
	Title       string
	Description string
	Status      string
	StatusClass string
	Assignee    string
	Reviewer    string
	HasReviewer bool
	Draggable   bool
}

var statusClasses = map[domain.TaskStatus]string{
	domain.TaskStatusTodo:       "status-slate-500",
	domain.TaskStatusInProgress: "status-blue-500",
	domain.TaskStatusReview:     "status-yellow-500",
	domain.TaskStatusRejected:   "status-red-500",
	domain.TaskStatusClosed:     "status-green-500",
}

// StatusClass returns the badge class for a status. Each status has its own.
func StatusClass(status domain.TaskStatus) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return "status-slate-500"
}

func NewCard(task domain.Task, draggable bool) Card {
	card := Card{
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		StatusClass: StatusClass(task.Status),
		Assignee:    task.Assignee.Name,
		Draggable:   draggable,
	}
	if draggable {
		card.ID = task.ID
	}
	if task.Reviewer != nil {
		card.HasReviewer = true
		card.Reviewer = task.Reviewer.Name
	}
	return card
}

func NewCards(tasks []domain.Task, draggable bool) []Card {
	cards := make([]Card, 0, len(tasks))
	for _, task := range tasks {
		cards = append(cards, NewCard(task, draggable))
	}
	return cards
}
