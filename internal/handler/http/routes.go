package http

import (
	"github.com/MKhiriev/todo-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGZip)
	router.Use(withSecurityHeaders()...)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/test", h.pipeline(h.hello))
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", h.pipeline(h.signup,
			h.optionalAuth,
			validate(validators.SignupBody),
		))
		r.Post("/signin", h.pipeline(h.signin,
			h.optionalAuth,
			validate(validators.SigninBody),
		))
		r.Put("/changePassword", h.pipeline(h.changePassword,
			h.requireAuth,
			validate(validators.ChangePasswordBody),
		))

		r.Get("/todos", h.pipeline(h.listTodos,
			h.requireAuth,
			validate(validators.ListTodosQuery),
		))
		r.Post("/todos", h.pipeline(h.createTodo,
			h.requireAuth,
			validate(validators.CreateTodoBody),
		))
		r.Put("/todos/{id}", h.pipeline(h.updateTodo,
			h.requireAuth,
			validate(validators.TodoIDParams),
			validate(validators.UpdateTodoBody),
		))
		r.Delete("/todos/{id}", h.pipeline(h.deleteTodo,
			h.requireAuth,
			validate(validators.TodoIDParams),
		))
	})

	return router
}
