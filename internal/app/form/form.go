// Package form drives the "Create Task" dialog: loading the user list,
// validating input and submitting the new task.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type State string

const (
	StateClosed       State = "closed"
	StateLoadingUsers State = "loading_users"
	StateReady        State = "ready"
)

const (
	msgLoadUsersFailed = "Failed to load users. Please try again."
	msgCreateFailed    = "Failed to create task. Please try again."
	msgTaskCreated     = "Task created successfully!"
	msgUnknownUser     = "The selected assignee or reviewer no longer exists."
	msgTaskRejected    = "The task details were rejected. Please check the fields."
)

var (
	ErrFormNotReady     = errors.New("task form is not ready")
	ErrSubmitInProgress = errors.New("task form submission already in progress")
)

// Values is what the user typed or picked. Empty ReviewerID means no reviewer.
type Values struct {
	Title       string
	Description string
	AssigneeID  string
	ReviewerID  string
}

// View is a copy of the form state for rendering.
type View struct {
	State      State
	Users      []domain.User
	Values     Values
	Errors     map[string]string
	Submitting bool
}

func (v View) Open() bool {
	return v.State != StateClosed
}

func (v View) LoadingUsers() bool {
	return v.State == StateLoadingUsers
}

type Form struct {
	tasks    ports.TaskService
	users    ports.UserService
	refresh  ports.RefreshSignal
	notifier notice.Notifier

	mu         sync.Mutex
	state      State
	userList   []domain.User
	values     Values
	errors     map[string]string
	submitting bool
}

func NewForm(tasks ports.TaskService, users ports.UserService, refresh ports.RefreshSignal, notifier notice.Notifier) *Form {
	return &Form{
		tasks:    tasks,
		users:    users,
		refresh:  refresh,
		notifier: notifier,
		state:    StateClosed,
	}
}

// Open shows the dialog and loads the user list. A failed load still
// leaves the form ready, with no users to pick from.
func (f *Form) Open(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateClosed {
		f.mu.Unlock()
		return nil
	}
	f.state = StateLoadingUsers
	f.userList = nil
	f.mu.Unlock()

	users, err := f.users.ListUsers(ctx)

	f.mu.Lock()
	if f.state != StateLoadingUsers {
		// closed while loading
		f.mu.Unlock()
		return err
	}
	f.state = StateReady
	if err == nil {
		f.userList = users
	}
	f.mu.Unlock()

	if err != nil {
		zap.L().Error("failed to load users", zap.Error(err))
		f.notify(notice.LevelError, msgLoadUsersFailed)
		return err
	}
	return nil
}

// Close hides the dialog and resets the form.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]domain.User, len(f.userList))
	copy(users, f.userList)

	var fieldErrors map[string]string
	if len(f.errors) > 0 {
		fieldErrors = make(map[string]string, len(f.errors))
		for field, msg := range f.errors {
			fieldErrors[field] = msg
		}
	}

	return View{
		State:      f.state,
		Users:      users,
		Values:     f.values,
		Errors:     fieldErrors,
		Submitting: f.submitting,
	}
}

// Submit validates values and creates the task. Validation failures never
// reach the store. On a store failure the form stays open with the typed
// values kept.
func (f *Form) Submit(ctx context.Context, values Values) (domain.Task, error) {
	f.mu.Lock()
	if f.state != StateReady {
		f.mu.Unlock()
		return domain.Task{}, ErrFormNotReady
	}
	if f.submitting {
		f.mu.Unlock()
		return domain.Task{}, ErrSubmitInProgress
	}

	f.values = values
	if err := Validate(values); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			f.errors = validationErr.Fields
		}
		f.mu.Unlock()
		return domain.Task{}, err
	}
	f.errors = nil
	f.submitting = true
	f.mu.Unlock()

	task, err := f.tasks.CreateTask(ctx, BuildCreateTaskInput(values))

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		zap.L().Error("failed to create task", zap.Error(err))
		f.notify(notice.LevelError, createErrorMessage(err))
		return domain.Task{}, err
	}
	f.reset()
	f.mu.Unlock()

	f.notify(notice.LevelSuccess, msgTaskCreated)
	if f.refresh != nil {
		if err := f.refresh.Signal(ctx); err != nil {
			zap.L().Warn("failed to signal task list refresh", zap.String("task_id", task.ID), zap.Error(err))
		}
	}
	return task, nil
}

// BuildCreateTaskInput maps form values to a store input. The status is
// always "To Do" and a blank reviewer becomes nil.
func BuildCreateTaskInput(values Values) domain.CreateTaskInput {
	input := domain.CreateTaskInput{
		Title:       strings.TrimSpace(values.Title),
		Description: strings.TrimSpace(values.Description),
		AssigneeID:  strings.TrimSpace(values.AssigneeID),
		Status:      domain.TaskStatusTodo,
	}
	if reviewer := strings.TrimSpace(values.ReviewerID); reviewer != "" {
		input.ReviewerID = &reviewer
	}
	return input
}

func (f *Form) reset() {
	f.state = StateClosed
	f.userList = nil
	f.values = Values{}
	f.errors = nil
}

func (f *Form) notify(level notice.Level, message string) {
	if f.notifier == nil {
		return
	}
	title := "Error"
	if level == notice.LevelSuccess {
		title = "Success"
	}
	f.notifier.Notify(notice.Notification{Level: level, Title: title, Message: message})
}

// createErrorMessage keeps driver and SQL text out of the notification.
func createErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return msgUnknownUser
	case errors.Is(err, domain.ErrInvalidTaskInput), errors.Is(err, domain.ErrInvalidTaskStatus):
		return msgTaskRejected
	default:
		return msgCreateFailed
	}
}
