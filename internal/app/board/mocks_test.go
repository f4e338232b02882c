package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/app/notice"
	"taskboard/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func withStatus(status domain.TaskStatus) interface{} {
	return mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.Status != nil && *input.Status == status
	})
}

// heldUpdate is an UpdateTask call parked inside the store until released.
type heldUpdate struct {
	issued  chan struct{}
	release chan struct{}
}

// holdUpdate expects one UpdateTask moving id to status. The call blocks
// until release is closed and then returns err.
func (m *taskServiceMock) holdUpdate(id string, status domain.TaskStatus, err error) heldUpdate {
	h := heldUpdate{issued: make(chan struct{}), release: make(chan struct{})}

	result := domain.Task{ID: id, Status: status}
	if err != nil {
		result = domain.Task{}
	}
	m.On("UpdateTask", mock.Anything, id, withStatus(status)).
		Run(func(mock.Arguments) {
			close(h.issued)
			<-h.release
		}).
		Return(result, err).
		Once()
	return h
}

func (h heldUpdate) wait(t *testing.T) {
	t.Helper()
	select {
	case <-h.issued:
	case <-time.After(time.Second):
		t.Fatal("update was not issued")
	}
}

func scenarioTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Write release notes", Status: domain.TaskStatusTodo},
		{ID: "2", Title: "Review login fix", Status: domain.TaskStatusReview},
	}
}

func newTestController(svc *taskServiceMock) (*Controller, *notice.Center) {
	center := notice.NewCenter()
	return NewController(NewBoard(), svc, center), center
}

// mountedController returns a controller already loaded with scenarioTasks.
func mountedController(t *testing.T) (*Controller, *taskServiceMock, *notice.Center) {
	t.Helper()
	svc := &taskServiceMock{}
	svc.On("ListTasks", mock.Anything).Return(scenarioTasks(), nil).Once()
	ctrl, center := newTestController(svc)
	require.NoError(t, ctrl.Mount(context.Background()))
	return ctrl, svc, center
}
