package validators

import "github.com/MKhiriev/todo-keeper/models"

// Server-managed fields clients may never set.
var (
	userForbiddenFields = []string{"id", "createdAt", "updatedAt"}
	todoForbiddenFields = []string{"id", "userId", "createdAt", "updatedAt"}
)

var (
	SignupBody         = NewSchema[models.SignupRequest](PartBody, userForbiddenFields...)
	SigninBody         = NewSchema[models.SigninRequest](PartBody, userForbiddenFields...)
	ChangePasswordBody = NewSchema[models.ChangePasswordRequest](PartBody, userForbiddenFields...)

	CreateTodoBody = NewSchema[models.CreateTodoRequest](PartBody, todoForbiddenFields...)
	UpdateTodoBody = NewSchema[models.UpdateTodoRequest](PartBody, todoForbiddenFields...)
	TodoIDParams   = NewSchema[models.TodoParams](PartParams)
	ListTodosQuery = NewSchema[models.ListTodosQuery](PartQuery)
)
