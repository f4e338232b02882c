// Package board holds the task collection behind the grid and kanban views
// and the drag-and-drop status transition logic.
package board

import (
	"sync"

	"taskboard/internal/core/domain"
)

// Board is the in-memory task collection. It is owned by a Controller;
// nothing else mutates it.
type Board struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	loaded bool
}

func NewBoard() *Board {
	return &Board{}
}

// Replace swaps in a freshly loaded collection.
func (b *Board) Replace(tasks []domain.Task) {
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = next
	b.loaded = true
}

func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

func (b *Board) Snapshot() []domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

func (b *Board) Find(id string) (domain.Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.tasks[i], true
	}
	return domain.Task{}, false
}

// ApplyStatus sets the task's status and returns the status it had before.
// changed is false when the task is unknown or already has that status.
func (b *Board) ApplyStatus(id string, status domain.TaskStatus) (prev domain.TaskStatus, changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return "", false
	}
	prev = b.tasks[i].Status
	if prev == status {
		return prev, false
	}
	b.tasks[i].Status = status
	return prev, true
}

// Revert restores a status captured by ApplyStatus.
func (b *Board) Revert(id string, prev domain.TaskStatus) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.tasks[i].Status = prev
	return true
}

func (b *Board) indexOf(id string) int {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
