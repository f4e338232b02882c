package form

import (
	"sort"
	"strings"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAssignee    = "assignee_id"
	FieldReviewer    = "reviewer_id"
)

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "invalid task form: " + strings.Join(parts, ", ")
}

// Validate returns nil or a *ValidationError.
func Validate(values Values) error {
	fields := map[string]string{}
	if strings.TrimSpace(values.Title) == "" {
		fields[FieldTitle] = "Title is required"
	}
	if strings.TrimSpace(values.Description) == "" {
		fields[FieldDescription] = "Description is required"
	}
	if strings.TrimSpace(values.AssigneeID) == "" {
		fields[FieldAssignee] = "Assignee is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
