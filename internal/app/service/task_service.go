package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const tracerName = "taskboard/internal/app/service"

type TaskService struct {
	taskRepository ports.TaskRepository
	tracer         trace.Tracer
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		tracer:         otel.Tracer(tracerName),
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.ListTasks")
	defer span.End()

	tasks, err := s.taskRepository.ListTasks(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("taskboard.tasks.count", len(tasks)))
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.CreateTask")
	defer span.End()

	task, err := s.taskRepository.CreateTask(ctx, input)
	if err != nil {
		recordError(span, err)
		return domain.Task{}, err
	}
	span.SetAttributes(attribute.String("taskboard.task.id", task.ID))
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.UpdateTask", trace.WithAttributes(
		attribute.String("taskboard.task.id", id),
	))
	defer span.End()

	if input.Status != nil {
		span.SetAttributes(attribute.String("taskboard.task.status", string(*input.Status)))
	}

	task, err := s.taskRepository.UpdateTask(ctx, id, input)
	if err != nil {
		recordError(span, err)
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "TaskService.DeleteTask", trace.WithAttributes(
		attribute.String("taskboard.task.id", id),
	))
	defer span.End()

	if err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

var _ ports.TaskService = (*TaskService)(nil)
