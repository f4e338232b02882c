package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/app/board"
	"taskboard/internal/app/form"
	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
)

func sampleTasks() []domain.Task {
	reviewer := "u-2"
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID: "1", Title: "Fix login", Description: "Blank page on submit",
			AssigneeID: "u-1", Status: domain.TaskStatusTodo,
			Assignee: domain.UserRef{ID: "u-1", Name: "Alice"},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2", Title: "Write docs", Description: "API reference",
			AssigneeID: "u-1", ReviewerID: &reviewer, Status: domain.TaskStatusReview,
			Assignee: domain.UserRef{ID: "u-1", Name: "Alice"},
			Reviewer: &domain.UserRef{ID: "u-2", Name: "Bob"},
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func TestNewCard(t *testing.T) {
	tasks := sampleTasks()

	card := NewCard(tasks[0], false)
	assert.Equal(t, "Fix login", card.Title)
	assert.Equal(t, "To Do", card.Status)
	assert.Equal(t, "Alice", card.Assignee)
	assert.False(t, card.HasReviewer)
	assert.Empty(t, card.ID)

	card = NewCard(tasks[1], true)
	assert.True(t, card.HasReviewer)
	assert.Equal(t, "Bob", card.Reviewer)
	assert.Equal(t, "2", card.ID)
}

func TestStatusClass_DistinctPerStatus(t *testing.T) {
	seen := map[string]bool{}
	for _, status := range domain.TaskStatuses() {
		class := StatusClass(status)
		assert.False(t, seen[class], class)
		seen[class] = true
	}
}

func TestToggleTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ToggleTheme(""))
	assert.Equal(t, ThemeDark, ToggleTheme(ThemeLight))
	assert.Equal(t, ThemeLight, ToggleTheme(ThemeDark))
	assert.Equal(t, ThemeLight, ParseTheme("blue"))
}

func render(t *testing.T, page Page) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "page", page))
	return buf.String()
}

func TestPage_GridRendersCardsWithoutDragPayload(t *testing.T) {
	p := board.Presentation{
		Mode:             board.ViewGrid,
		Filter:           board.Filter{Status: board.StatusFilterAll},
		Loaded:           true,
		ShowStatusFilter: true,
		Tasks:            sampleTasks(),
	}
	html := render(t, NewPage(p, ThemeLight, nil, form.View{State: form.StateClosed}, ""))

	assert.Contains(t, html, "Fix login")
	assert.Contains(t, html, "Reviewer: Bob")
	assert.Equal(t, 1, strings.Count(html, "Reviewer:"))
	assert.NotContains(t, html, "data-task-id")
	assert.Contains(t, html, `name="status"`)
}

func TestPage_KanbanRendersFiveColumns(t *testing.T) {
	tasks := sampleTasks()
	p := board.Presentation{
		Mode:    board.ViewKanban,
		Loaded:  true,
		Columns: board.Kanban(tasks, ""),
	}
	page := NewPage(p, ThemeDark, nil, form.View{State: form.StateClosed}, "")
	require.Len(t, page.Columns, 5)

	html := render(t, page)
	assert.Equal(t, 5, strings.Count(html, `class="column"`))
	assert.Contains(t, html, `data-task-id="1"`)
	assert.NotContains(t, html, `name="status"`)
	assert.Contains(t, html, "theme-dark")
}

func TestPage_SkeletonWhenNotLoaded(t *testing.T) {
	p := board.Presentation{Mode: board.ViewGrid}
	page := NewPage(p, "", nil, form.View{State: form.StateClosed}, "Something went wrong")

	assert.Len(t, page.Skeleton, SkeletonCards)
	html := render(t, page)
	assert.Equal(t, SkeletonCards, strings.Count(html, "card placeholder"))
	assert.Contains(t, html, "Something went wrong")
}

func TestPage_FormAndToasts(t *testing.T) {
	dialog := form.View{
		State:  form.StateReady,
		Users:  []domain.User{{ID: "u-1", Name: "Alice"}, {ID: "u-2", Name: "Bob"}},
		Values: form.Values{Title: "Draft", AssigneeID: "u-2"},
		Errors: map[string]string{form.FieldDescription: "Description is required"},
	}
	toasts := []notice.Notification{{Level: notice.LevelError, Title: "Error", Message: "Failed to load users. Please try again."}}

	html := render(t, NewPage(board.Presentation{Mode: board.ViewGrid, Loaded: true}, "", toasts, dialog, ""))

	assert.Contains(t, html, "Create Task")
	assert.Contains(t, html, `value="Draft"`)
	assert.Contains(t, html, "Description is required")
	assert.Contains(t, html, `<option value="u-2" selected>Bob</option>`)
	assert.Contains(t, html, `class="toast toast-error"`)
}
