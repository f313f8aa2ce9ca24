package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/todo-keeper/internal/config"
	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

const apiPrefix = "/api/v1"

type httpTodoAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTodoAPI constructs the HTTP implementation of [TodoAPI] for the
// server at cfg.BaseURL. A token from cfg is stored right away.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPTodoAPI(cfg config.ClientConfig, logger *logger.Logger) (TodoAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("api call")
			return nil
		})

	api := &httpTodoAPI{client: client, logger: logger}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTodoAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTodoAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [TodoAPI] via POST /api/v1/signup. A stored token is
// sent along and must still be valid.
func (h *httpTodoAPI) Signup(ctx context.Context, email, password string) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.SignupRequest{Email: email, Password: password}).
		Post(apiPrefix + "/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Signin implements [TodoAPI] via POST /api/v1/signin. Like Signup it sends
// a stored token; the returned token replaces it.
func (h *httpTodoAPI) Signin(ctx context.Context, email, password string) (string, error) {
	var result models.TokenResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.SigninRequest{Email: email, Password: password}).
		SetResult(&result).
		Post(apiPrefix + "/signin")
	if err != nil {
		return "", fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("signin response carries no token")
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

// ChangePassword implements [TodoAPI] via PUT /api/v1/changePassword.
func (h *httpTodoAPI) ChangePassword(ctx context.Context, email, password string) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.ChangePasswordRequest{Email: email, Password: password}).
		Put(apiPrefix + "/changePassword")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTodos implements [TodoAPI] via GET /api/v1/todos.
func (h *httpTodoAPI) ListTodos(ctx context.Context, status *models.TodoStatus) ([]models.Todo, error) {
	var todos []models.Todo

	req := h.authedRequest(ctx).SetResult(&todos)
	if status != nil {
		req.SetQueryParam("status", status.String())
	}

	resp, err := req.Get(apiPrefix + "/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return todos, nil
}

// CreateTodo implements [TodoAPI] via POST /api/v1/todos.
func (h *httpTodoAPI) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&todo).
		Post(apiPrefix + "/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// UpdateTodo implements [TodoAPI] via PUT /api/v1/todos/{id}.
func (h *httpTodoAPI) UpdateTodo(ctx context.Context, id string, req models.UpdateTodoRequest) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&todo).
		Put(apiPrefix + "/todos/{id}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// DeleteTodo implements [TodoAPI] via DELETE /api/v1/todos/{id} and
// returns the removed item.
func (h *httpTodoAPI) DeleteTodo(ctx context.Context, id string) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&todo).
		Delete(apiPrefix + "/todos/{id}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("delete todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// Version implements [TodoAPI] via GET /api/version/.
func (h *httpTodoAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTodoAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerPrefix+token)
	}
	return req
}
