package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.title,
  t.description,
  t.assignee_id,
  t.reviewer_id,
  t.status,
  t.created_at,
  t.updated_at,
  a.name AS assignee_name,
  r.name AS reviewer_name
FROM tasks t
LEFT JOIN users a ON a.id = t.assignee_id
LEFT JOIN users r ON r.id = t.reviewer_id
`

const listTasksQuery = selectTasksQuery + `ORDER BY t.created_at DESC;`

const getTaskQuery = selectTasksQuery + `WHERE t.id = ?;`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, assignee_id, reviewer_id, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	AssigneeID   string         `db:"assignee_id"`
	ReviewerID   sql.NullString `db:"reviewer_id"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	AssigneeName sql.NullString `db:"assignee_name"`
	ReviewerName sql.NullString `db:"reviewer_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, storeError("tasks.list", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, domain.NewStoreError("tasks.list", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	const op = "tasks.create"

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	assigneeID := strings.TrimSpace(input.AssigneeID)
	if title == "" || description == "" || assigneeID == "" {
		return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskInput)
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	if !status.IsValid() {
		return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskStatus)
	}

	id := uuid.NewString()
	now := r.now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		id,
		title,
		description,
		assigneeID,
		nullableString(input.ReviewerID),
		string(status),
		now,
		now,
	)
	if err != nil {
		return domain.Task{}, storeError(op, err)
	}

	return r.getTask(ctx, op, id)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	const op = "tasks.update"

	if strings.TrimSpace(id) == "" {
		return domain.Task{}, domain.NewStoreError(op, domain.ErrTaskNotFound)
	}
	if input.IsEmpty() {
		return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskInput)
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if input.Title != nil {
		value := strings.TrimSpace(*input.Title)
		if value == "" {
			return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskInput)
		}
		sets = append(sets, "title = ?")
		args = append(args, value)
	}
	if input.Description != nil {
		value := strings.TrimSpace(*input.Description)
		if value == "" {
			return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskInput)
		}
		sets = append(sets, "description = ?")
		args = append(args, value)
	}
	if input.AssigneeID != nil {
		value := strings.TrimSpace(*input.AssigneeID)
		if value == "" {
			return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskInput)
		}
		sets = append(sets, "assignee_id = ?")
		args = append(args, value)
	}
	if input.ReviewerIDSet {
		sets = append(sets, "reviewer_id = ?")
		args = append(args, nullableString(input.ReviewerID))
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domain.Task{}, domain.NewStoreError(op, domain.ErrInvalidTaskStatus)
		}
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, r.now().UTC(), id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, storeError(op, err)
	}

	return r.getTask(ctx, op, id)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	const op = "tasks.delete"

	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return storeError(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeError(op, err)
	}
	if affected == 0 {
		return domain.NewStoreError(op, domain.ErrTaskNotFound)
	}

	return nil
}

func (r *TaskRepository) getTask(ctx context.Context, op, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.NewStoreError(op, domain.ErrTaskNotFound)
		}
		return domain.Task{}, storeError(op, err)
	}

	task, err := mapTaskRowToDomainTask(row)
	if err != nil {
		return domain.Task{}, domain.NewStoreError(op, err)
	}
	return task, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	status, err := domain.ParseTaskStatus(row.Status)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		AssigneeID:  row.AssigneeID,
		Status:      status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Assignee: domain.UserRef{
			ID:   row.AssigneeID,
			Name: row.AssigneeName.String,
		},
	}

	if row.ReviewerID.Valid && row.ReviewerID.String != "" {
		value := row.ReviewerID.String
		task.ReviewerID = &value
		task.Reviewer = &domain.UserRef{
			ID:   value,
			Name: row.ReviewerName.String,
		}
	}

	return task, nil
}

// nullableString maps nil and blank strings to SQL NULL.
func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: trimmed, Valid: true}
}
