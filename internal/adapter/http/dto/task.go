package dto

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssigneeID  string   `json:"assignee_id"`
	ReviewerID  *string  `json:"reviewer_id"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Assignee    UserRef  `json:"assignee"`
	Reviewer    *UserRef `json:"reviewer"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description string  `json:"description" binding:"max=65535"`
	AssigneeID  string  `json:"assignee_id" binding:"max=36"`
	ReviewerID  *string `json:"reviewer_id" binding:"omitempty,max=36"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,max=36"`
	ReviewerID  *string `json:"reviewer_id" binding:"omitempty,max=36"`
	Status      *string `json:"status"`
}

type DragStartRequest struct {
	TaskID string `json:"task_id" binding:"required"`
}

type DragEndRequest struct {
	TaskID string `json:"task_id" binding:"required"`
	Status string `json:"status"`
}

type DragEndResponse struct {
	Outcome string `json:"outcome"`
	TaskID  string `json:"task_id"`
	Status  string `json:"status,omitempty"`
}
