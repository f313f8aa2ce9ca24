package http

import (
	"net/http"

	"github.com/MKhiriev/todo-keeper/models"
)

func (h *Handler) listTodos(r *http.Request) (any, error) {
	query, err := input[models.ListTodosQuery](r)
	if err != nil {
		return nil, err
	}

	return h.services.TodoService.List(r.Context(), query.Status)
}

func (h *Handler) createTodo(r *http.Request) (any, error) {
	req, err := input[models.CreateTodoRequest](r)
	if err != nil {
		return nil, err
	}

	todo := models.Todo{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.TodoStatusNotStarted,
	}
	if req.Status != nil {
		todo.Status = *req.Status
	}

	return h.services.TodoService.Create(r.Context(), todo)
}

func (h *Handler) updateTodo(r *http.Request) (any, error) {
	params, err := input[models.TodoParams](r)
	if err != nil {
		return nil, err
	}
	req, err := input[models.UpdateTodoRequest](r)
	if err != nil {
		return nil, err
	}

	return h.services.TodoService.Update(r.Context(), models.TodoUpdate{
		ID:          params.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
}

func (h *Handler) deleteTodo(r *http.Request) (any, error) {
	params, err := input[models.TodoParams](r)
	if err != nil {
		return nil, err
	}

	return h.services.TodoService.Delete(r.Context(), params.ID)
}
