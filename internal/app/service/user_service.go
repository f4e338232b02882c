package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	tracer         trace.Tracer
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
		tracer:         otel.Tracer(tracerName),
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.ListUsers")
	defer span.End()

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("taskboard.users.count", len(users)))
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetUserByID", trace.WithAttributes(
		attribute.String("taskboard.user.id", id),
	))
	defer span.End()

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()

	user, err := s.userRepository.CreateUser(ctx, input)
	if err != nil {
		recordError(span, err)
		return domain.User{}, err
	}
	return user, nil
}

var _ ports.UserService = (*UserService)(nil)
