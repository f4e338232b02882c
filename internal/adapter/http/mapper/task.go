package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
	"time"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  task.AssigneeID,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		Assignee: dto.UserRef{
			ID:   task.Assignee.ID,
			Name: task.Assignee.Name,
		},
	}

	if task.HasReviewer() {
		value := *task.ReviewerID
		item.ReviewerID = &value
	}

	if task.Reviewer != nil {
		item.Reviewer = &dto.UserRef{
			ID:   task.Reviewer.ID,
			Name: task.Reviewer.Name,
		}
	}

	return item
}
