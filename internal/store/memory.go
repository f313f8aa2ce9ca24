package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/models"
)

// memoryStore keeps users and todos in process memory. It backs both
// repository interfaces when no database is configured and is safe for
// concurrent use.
type memoryStore struct {
	mu sync.RWMutex

	users   map[string]models.User // by id
	byEmail map[string]string      // email -> id
	todos   map[string]models.Todo // by id

	now func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		todos:   make(map[string]models.Todo),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type memoryUserRepository struct {
	store *memoryStore
}

// newMemoryUserRepository returns a [UserRepository] over the given store.
func newMemoryUserRepository(s *memoryStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{store: s}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return s.users[id], nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, id string) (models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, password string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = password
	user.UpdatedAt = s.now()
	s.users[userID] = user

	return nil
}

type memoryTodoRepository struct {
	store *memoryStore
}

// newMemoryTodoRepository returns a [TodoRepository] over the given store.
func newMemoryTodoRepository(s *memoryStore, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating in-memory todo repository")
	return &memoryTodoRepository{store: s}
}

func (r *memoryTodoRepository) ListTodos(_ context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]models.Todo, 0)
	for _, todo := range s.todos {
		if todo.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && todo.Status != *filter.Status {
			continue
		}
		todos = append(todos, cloneTodo(todo))
	}

	slices.SortFunc(todos, func(a, b models.Todo) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return todos, nil
}

func (r *memoryTodoRepository) CreateTodo(_ context.Context, todo models.Todo) (models.Todo, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	todo.CreatedAt, todo.UpdatedAt = now, now
	todo = cloneTodo(todo)
	s.todos[todo.ID] = todo

	return cloneTodo(todo), nil
}

func (r *memoryTodoRepository) FindTodoByID(_ context.Context, id string) (models.Todo, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrTodoNotFound
	}
	return cloneTodo(todo), nil
}

func (r *memoryTodoRepository) UpdateTodo(_ context.Context, update models.TodoUpdate) (models.Todo, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[update.ID]
	if !ok || todo.UserID != update.UserID {
		return models.Todo{}, ErrTodoNotFound
	}

	if update.Name != nil {
		todo.Name = *update.Name
	}
	if update.Description != nil {
		d := *update.Description
		todo.Description = &d
	}
	if update.Status != nil {
		todo.Status = *update.Status
	}
	todo.UpdatedAt = s.now()
	s.todos[todo.ID] = todo

	return cloneTodo(todo), nil
}

func (r *memoryTodoRepository) DeleteTodo(_ context.Context, id, userID string) (models.Todo, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return models.Todo{}, ErrTodoNotFound
	}
	delete(s.todos, id)

	return todo, nil
}

// cloneTodo detaches the description pointer so callers never share
// memory with the stored record.
func cloneTodo(todo models.Todo) models.Todo {
	if todo.Description != nil {
		d := *todo.Description
		todo.Description = &d
	}
	return todo
}
