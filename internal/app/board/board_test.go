package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
)

func TestBoard_ReplaceCopiesInput(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Loaded())

	tasks := scenarioTasks()
	b.Replace(tasks)
	tasks[0].Status = domain.TaskStatusClosed

	require.True(t, b.Loaded())
	got, ok := b.Find("1")
	require.True(t, ok)
	assert.Equal(t, domain.TaskStatusTodo, got.Status)
}

func TestBoard_ApplyStatusAndRevert(t *testing.T) {
	b := NewBoard()
	b.Replace(scenarioTasks())

	prev, changed := b.ApplyStatus("1", domain.TaskStatusInProgress)
	require.True(t, changed)
	assert.Equal(t, domain.TaskStatusTodo, prev)

	got, _ := b.Find("1")
	assert.Equal(t, domain.TaskStatusInProgress, got.Status)

	require.True(t, b.Revert("1", prev))
	got, _ = b.Find("1")
	assert.Equal(t, domain.TaskStatusTodo, got.Status)
}

func TestBoard_ApplyStatusNoChange(t *testing.T) {
	b := NewBoard()
	b.Replace(scenarioTasks())

	_, changed := b.ApplyStatus("2", domain.TaskStatusReview)
	assert.False(t, changed)

	_, changed = b.ApplyStatus("missing", domain.TaskStatusReview)
	assert.False(t, changed)
	assert.False(t, b.Revert("missing", domain.TaskStatusTodo))
}

func TestBoard_SnapshotIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Replace(scenarioTasks())

	snapshot := b.Snapshot()
	snapshot[0].Title = "changed"

	got, _ := b.Find("1")
	assert.Equal(t, "Write release notes", got.Title)
}
