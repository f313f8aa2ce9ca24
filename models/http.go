package models

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,len=64"`
}

// SigninRequest is the body of POST /signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,len=64"`
}

// ChangePasswordRequest is the body of PUT /changePassword.
type ChangePasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,len=64"`
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description *string     `json:"description"`
	Status      *TodoStatus `json:"status" validate:"required,todostatus"`
}

// Normalize applies defaults to fields the client omitted.
func (r *CreateTodoRequest) Normalize() {
	if r.Status == nil {
		status := TodoStatusNotStarted
		r.Status = &status
	}
}

// UpdateTodoRequest is the body of PUT /todos/{id}. Omitted fields keep
// their stored values.
type UpdateTodoRequest struct {
	Name        *string     `json:"name" validate:"omitnil,min=1"`
	Description *string     `json:"description"`
	Status      *TodoStatus `json:"status" validate:"omitnil,todostatus"`
}

// TodoParams holds the path parameters of the /todos/{id} routes.
type TodoParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ListTodosQuery holds the query parameters of GET /todos.
type ListTodosQuery struct {
	Status *TodoStatus `json:"status" validate:"omitnil,todostatus"`
}

// HelloResponse is the body of the smoke route.
type HelloResponse struct {
	Hello string `json:"hello"`
}
