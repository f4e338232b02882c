package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusReview     TaskStatus = "Review"
	TaskStatusRejected   TaskStatus = "Rejected"
	TaskStatusClosed     TaskStatus = "Closed"
)

var taskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusRejected,
	TaskStatusClosed,
}

// TaskStatuses returns every status in board column order.
func TaskStatuses() []TaskStatus {
	statuses := make([]TaskStatus, len(taskStatuses))
	copy(statuses, taskStatuses)
	return statuses
}

func (s TaskStatus) IsValid() bool {
	for _, status := range taskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ParseTaskStatus(value string) (TaskStatus, error) {
	status := TaskStatus(value)
	if !status.IsValid() {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// UserRef is the id and name of a user joined onto a task.
type UserRef struct {
	ID   string
	Name string
}

type Task struct {
	ID          string
	Title       string
	Description string
	AssigneeID  string
	ReviewerID  *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Assignee    UserRef
	Reviewer    *UserRef
}

func (t Task) HasReviewer() bool {
	return t.ReviewerID != nil && *t.ReviewerID != ""
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  string
	ReviewerID  *string
	Status      TaskStatus
}

type UpdateTaskInput struct {
	Title         *string
	Description   *string
	AssigneeID    *string
	ReviewerID    *string
	ReviewerIDSet bool
	Status        *TaskStatus
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.AssigneeID == nil &&
		!in.ReviewerIDSet &&
		in.Status == nil
}
