package board

import (
	"strings"

	"taskboard/internal/core/domain"
)

type ViewMode string

const (
	ViewGrid   ViewMode = "grid"
	ViewKanban ViewMode = "kanban"
)

// ParseViewMode falls back to the grid for anything unknown.
func ParseViewMode(value string) ViewMode {
	if ViewMode(value) == ViewKanban {
		return ViewKanban
	}
	return ViewGrid
}

const StatusFilterAll = "all"

type Filter struct {
	Search string
	Status string
}

// NormalizeStatusFilter maps empty or unknown values to StatusFilterAll.
func NormalizeStatusFilter(value string) string {
	if domain.TaskStatus(value).IsValid() {
		return value
	}
	return StatusFilterAll
}

func (f Filter) Matches(task domain.Task) bool {
	if !matchesSearch(task.Title, f.Search) {
		return false
	}
	return f.Status == "" || f.Status == StatusFilterAll || string(task.Status) == f.Status
}

// Grid returns the tasks shown in grid mode, in input order.
func Grid(tasks []domain.Task, f Filter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			out = append(out, task)
		}
	}
	return out
}

type Column struct {
	Status domain.TaskStatus
	Tasks  []domain.Task
}

// Kanban partitions tasks into one column per status. The status filter
// does not apply here.
func Kanban(tasks []domain.Task, search string) []Column {
	statuses := domain.TaskStatuses()
	columns := make([]Column, len(statuses))
	index := make(map[domain.TaskStatus]int, len(statuses))
	for i, status := range statuses {
		columns[i] = Column{Status: status, Tasks: []domain.Task{}}
		index[status] = i
	}

	for _, task := range tasks {
		if !matchesSearch(task.Title, search) {
			continue
		}
		i, ok := index[task.Status]
		if !ok {
			continue
		}
		columns[i].Tasks = append(columns[i].Tasks, task)
	}
	return columns
}

func matchesSearch(title, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(search))
}

// Presentation is everything the list view needs for one render.
type Presentation struct {
	Mode             ViewMode
	Filter           Filter
	Loaded           bool
	ShowStatusFilter bool
	Tasks            []domain.Task
	Columns          []Column
	Active           *domain.Task
}
