// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the todo HTTP API.
//
// [TodoAPI] hides the transport from callers such as the command-line
// client. Non-2xx responses are mapped by mapHTTPError to the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrForbidden] for 403) without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/todo-keeper/models"
)

// TodoAPI talks to the todo server on behalf of one user.
type TodoAPI interface {
	// SetToken stores the bearer credential attached to authenticated
	// calls. Signin calls it on success.
	SetToken(token string)

	// Token returns the stored bearer credential, or "".
	Token() string

	// Signup registers a new account. password is the client-side digest.
	Signup(ctx context.Context, email, password string) error

	// Signin exchanges credentials for a bearer token and stores it.
	Signin(ctx context.Context, email, password string) (string, error)

	// ChangePassword replaces the password of the signed-in account.
	ChangePassword(ctx context.Context, email, password string) error

	// ListTodos returns the caller's todos, optionally filtered by status.
	ListTodos(ctx context.Context, status *models.TodoStatus) ([]models.Todo, error)

	CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error)
	UpdateTodo(ctx context.Context, id string, req models.UpdateTodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) (models.Todo, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
