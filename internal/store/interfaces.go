// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/todo-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new account. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// UpdatePassword replaces the stored digest of the given account.
	UpdatePassword(ctx context.Context, userID, password string) error
}

// TodoRepository persists todo items. Every mutating method is scoped by
// owner: a todo that exists but belongs to someone else is reported as
// [ErrTodoNotFound].
type TodoRepository interface {
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	FindTodoByID(ctx context.Context, id string) (models.Todo, error)
	UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, id, userID string) (models.Todo, error)
}
