package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/store"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/models"
)

// todoService is the concrete implementation of TodoService.
//
// Ownership is checked in two steps: the todo is loaded and its owner
// compared with the principal, then the mutation itself is scoped by owner.
// A todo removed between the two steps ends up as ErrAccessDenied as well,
// so missing and foreign todos look the same to the caller.
type todoService struct {
	todoRepository store.TodoRepository
	ids            IDGenerator
	logger         *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, ids IDGenerator, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		ids:            ids,
		logger:         logger,
	}
}

func (s *todoService) List(ctx context.Context, status *models.TodoStatus) ([]models.Todo, error) {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrAccessDenied
	}

	todos, err := s.todoRepository.ListTodos(ctx, models.TodoFilter{UserID: principal.UserID, Status: status})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", principal.UserID).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// Create stores todo under the principal. ID and UserID of the argument
// are overwritten.
func (s *todoService) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return models.Todo{}, ErrAccessDenied
	}

	todo.ID = s.ids.Generate()
	todo.UserID = principal.UserID
	if todo.Status == "" {
		todo.Status = models.TodoStatusNotStarted
	}

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", principal.UserID).Msg("creating todo failed")
		return models.Todo{}, fmt.Errorf("creating todo failed: %w", err)
	}

	return created, nil
}

func (s *todoService) Update(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	principal, err := s.authorize(ctx, update.ID)
	if err != nil {
		return models.Todo{}, err
	}

	update.UserID = principal.UserID
	updated, err := s.todoRepository.UpdateTodo(ctx, update)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Todo{}, ErrAccessDenied
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", update.ID).Msg("updating todo failed")
		return models.Todo{}, fmt.Errorf("updating todo failed: %w", err)
	}

	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id string) (models.Todo, error) {
	principal, err := s.authorize(ctx, id)
	if err != nil {
		return models.Todo{}, err
	}

	deleted, err := s.todoRepository.DeleteTodo(ctx, id, principal.UserID)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Todo{}, ErrAccessDenied
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("deleting todo failed")
		return models.Todo{}, fmt.Errorf("deleting todo failed: %w", err)
	}

	return deleted, nil
}

// authorize returns the principal if it owns the todo with the given id.
func (s *todoService) authorize(ctx context.Context, id string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return models.Principal{}, ErrAccessDenied
	}

	todo, err := s.todoRepository.FindTodoByID(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		log.Debug().Str("id", id).Msg("todo does not exist")
		return models.Principal{}, ErrAccessDenied
	}
	if err != nil {
		log.Err(err).Str("id", id).Msg("todo search by id failed")
		return models.Principal{}, fmt.Errorf("todo search by id failed: %w", err)
	}

	if todo.UserID != principal.UserID {
		log.Debug().Str("id", id).Str("user_id", principal.UserID).Msg("todo belongs to another user")
		return models.Principal{}, ErrAccessDenied
	}

	return principal, nil
}
