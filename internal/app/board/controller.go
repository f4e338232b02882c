package board

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const msgStatusUpdateFailed = "Failed to update task status. Please try again."

// DragHandler is the capability a drag-and-drop input drives.
type DragHandler interface {
	OnDragStart(taskID string)
	OnDragEnd(ctx context.Context, taskID string, destination domain.TaskStatus) (Outcome, error)
}

type Outcome string

const (
	// OutcomeNoop means nothing changed and no call was made.
	OutcomeNoop Outcome = "noop"
	// OutcomeApplied means the store accepted the new status.
	OutcomeApplied Outcome = "applied"
	// OutcomeReverted means the store rejected it and the prior status is back.
	OutcomeReverted Outcome = "reverted"
	// OutcomeStale means a newer drag of the same task superseded this one.
	OutcomeStale Outcome = "stale"
)

type Controller struct {
	board    *Board
	tasks    ports.TaskService
	notifier notice.Notifier

	loadMu sync.Mutex

	mu     sync.Mutex
	drags  map[string]*dragState
	active string
}

// dragState tracks status updates of one task. seq only grows, so a
// finished update can never be mistaken for a newer one started after it.
type dragState struct {
	seq uint64
	// confirmed is the last status the store is known to hold.
	confirmed domain.TaskStatus
	settled   bool
	accepted  bool
}

var _ DragHandler = (*Controller)(nil)

func NewController(board *Board, tasks ports.TaskService, notifier notice.Notifier) *Controller {
	return &Controller{
		board:    board,
		tasks:    tasks,
		notifier: notifier,
		drags:    make(map[string]*dragState),
	}
}

func (c *Controller) Board() *Board {
	return c.board
}

// Mount loads the collection the first time it is called.
func (c *Controller) Mount(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if c.board.Loaded() {
		return nil
	}
	return c.load(ctx)
}

// Refresh reloads the collection on demand.
func (c *Controller) Refresh(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	return c.load(ctx)
}

func (c *Controller) load(ctx context.Context) error {
	tasks, err := c.tasks.ListTasks(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.board.Replace(tasks)
	for _, t := range tasks {
		c.state(t.ID).confirmed = t.Status
	}
	return nil
}

func (c *Controller) OnDragStart(taskID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = taskID
}

// ActiveTask is the card currently being dragged, if any.
func (c *Controller) ActiveTask() (domain.Task, bool) {
	c.mu.Lock()
	id := c.active
	c.mu.Unlock()

	if id == "" {
		return domain.Task{}, false
	}
	return c.board.Find(id)
}

// OnDragEnd moves the task to destination optimistically, persists the
// change, and restores the last confirmed status if the store rejects it.
// Only the newest drag of a task decides what the board shows.
func (c *Controller) OnDragEnd(ctx context.Context, taskID string, destination domain.TaskStatus) (Outcome, error) {
	c.mu.Lock()
	c.active = ""
	c.mu.Unlock()

	if destination == "" {
		return OutcomeNoop, nil
	}
	if !destination.IsValid() {
		return OutcomeNoop, domain.ErrInvalidTaskStatus
	}

	seq, prev, changed := c.begin(taskID, destination)
	if !changed {
		return OutcomeNoop, nil
	}

	status := destination
	_, err := c.tasks.UpdateTask(ctx, taskID, domain.UpdateTaskInput{Status: &status})

	outcome, restored := c.finish(taskID, seq, destination, err)
	switch outcome {
	case OutcomeStale:
		zap.L().Debug("discarding superseded status update",
			zap.String("task_id", taskID),
			zap.String("status", string(destination)),
			zap.Error(err),
		)
		return OutcomeStale, err
	case OutcomeReverted:
		zap.L().Error("failed to update task status",
			zap.String("task_id", taskID),
			zap.String("from", string(prev)),
			zap.String("to", string(destination)),
			zap.String("restored", string(restored)),
			zap.Error(err),
		)
		if c.notifier != nil {
			c.notifier.Notify(notice.Notification{
				Level:   notice.LevelError,
				Title:   "Error",
				Message: msgStatusUpdateFailed,
			})
		}
		return OutcomeReverted, err
	}

	return OutcomeApplied, nil
}

// Present builds the list view for the given mode and filter.
func (c *Controller) Present(mode ViewMode, filter Filter) Presentation {
	tasks := c.board.Snapshot()
	p := Presentation{
		Mode:   mode,
		Filter: filter,
		Loaded: c.board.Loaded(),
	}

	switch mode {
	case ViewKanban:
		p.Columns = Kanban(tasks, filter.Search)
	default:
		p.Mode = ViewGrid
		p.ShowStatusFilter = true
		p.Tasks = Grid(tasks, filter)
	}

	if active, ok := c.ActiveTask(); ok {
		p.Active = &active
	}
	return p
}

// state must be called with c.mu held.
func (c *Controller) state(taskID string) *dragState {
	st, ok := c.drags[taskID]
	if !ok {
		st = &dragState{}
		c.drags[taskID] = st
	}
	return st
}

// begin applies destination and numbers the update in one step, so two
// drags of the same task get sequence numbers in the order they hit the
// board.
func (c *Controller) begin(taskID string, destination domain.TaskStatus) (uint64, domain.TaskStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, changed := c.board.ApplyStatus(taskID, destination)
	if !changed {
		return 0, prev, false
	}
	st := c.state(taskID)
	if st.confirmed == "" {
		st.confirmed = prev
	}
	st.seq++
	st.settled = false
	st.accepted = false
	return st.seq, prev, true
}

// finish records the result of update seq and settles what the board shows.
// It returns the status restored on the board when the update is reverted.
func (c *Controller) finish(taskID string, seq uint64, destination domain.TaskStatus, err error) (Outcome, domain.TaskStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state(taskID)
	if seq != st.seq {
		// An older update landing after a failed newer one is still what
		// the store holds.
		if err == nil && !st.accepted {
			st.confirmed = destination
			if st.settled {
				c.board.Revert(taskID, destination)
			}
		}
		return OutcomeStale, ""
	}

	st.settled = true
	if err != nil {
		c.board.Revert(taskID, st.confirmed)
		return OutcomeReverted, st.confirmed
	}
	st.accepted = true
	st.confirmed = destination
	return OutcomeApplied, ""
}
