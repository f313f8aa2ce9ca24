package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/todo-keeper/models"
)

// AuthService handles accounts and bearer credentials.
type AuthService interface {
	// Signup registers a new account. The password is the client-computed
	// digest and is stored as is.
	Signup(ctx context.Context, user models.User) (models.User, error)
	// Signin checks the credentials and issues a token for the account.
	Signin(ctx context.Context, email, password string) (models.Token, error)
	// ChangePassword replaces the digest of the account of the request
	// principal, provided email belongs to that account.
	ChangePassword(ctx context.Context, email, newPassword string) error

	IssueToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// TodoService manages the todos of the request principal. Every method
// reads the principal from ctx and fails with ErrAccessDenied without one.
type TodoService interface {
	List(ctx context.Context, status *models.TodoStatus) ([]models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Update(ctx context.Context, update models.TodoUpdate) (models.Todo, error)
	Delete(ctx context.Context, id string) (models.Todo, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
