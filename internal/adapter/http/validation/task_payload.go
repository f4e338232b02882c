package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/app/form"
	"taskboard/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidUserPayload = errors.New("invalid user payload")
)

// BuildCreateTaskInput applies the same rules as the board's creation form:
// per-field messages for missing values, status always "To Do", and a
// blank reviewer stored as no reviewer.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	values := form.Values{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}
	if req.ReviewerID != nil {
		values.ReviewerID = *req.ReviewerID
	}

	if err := form.Validate(values); err != nil {
		return domain.CreateTaskInput{}, err
	}
	return form.BuildCreateTaskInput(values), nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	title, err := requiredText(raw, "title", req.Title)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	description, err := requiredText(raw, "description", req.Description)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	assigneeID, err := requiredText(raw, "assignee_id", req.AssigneeID)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		status = &value
	}

	reviewerIDSet := hasJSONField(raw, "reviewer_id")
	if reviewerIDSet && !isJSONNull(raw["reviewer_id"]) && req.ReviewerID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	var reviewerID *string
	if req.ReviewerID != nil {
		if value := strings.TrimSpace(*req.ReviewerID); value != "" {
			reviewerID = &value
		}
	}

	return domain.UpdateTaskInput{
		Title:         title,
		Description:   description,
		AssigneeID:    assigneeID,
		ReviewerID:    reviewerID,
		ReviewerIDSet: reviewerIDSet,
		Status:        status,
	}, nil
}

func BuildCreateUserInput(req dto.CreateUserRequest) (domain.CreateUserInput, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return domain.CreateUserInput{}, ErrInvalidUserPayload
	}

	role, err := domain.ParseUserRole(req.Role)
	if err != nil {
		return domain.CreateUserInput{}, err
	}

	return domain.CreateUserInput{Name: name, Email: email, Role: role}, nil
}

// requiredText rejects explicit nulls and blank strings for a field that
// cannot be cleared.
func requiredText(raw map[string]json.RawMessage, field string, value *string) (*string, error) {
	if hasJSONField(raw, field) && value == nil {
		return nil, ErrInvalidTaskPayload
	}
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, ErrInvalidTaskPayload
	}
	return &trimmed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "assignee_id") ||
		hasJSONField(raw, "reviewer_id") ||
		hasJSONField(raw, "status")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
