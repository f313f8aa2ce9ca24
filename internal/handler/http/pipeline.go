package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/internal/validators"
)

// stage is one step in front of an endpoint. It either returns the request
// to hand to the next step, usually with something added to its context,
// or an error that ends the pipeline.
type stage func(r *http.Request) (*http.Request, error)

// endpoint produces the JSON payload of a successful response.
type endpoint func(r *http.Request) (any, error)

// pipeline runs stages in order and then ep. The first error is written by
// writeError; nothing after it runs.
func (h *Handler) pipeline(ep endpoint, stages ...stage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, s := range stages {
			next, err := s(r)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			r = next
		}

		payload, err := ep(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, payload, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing response")
		}
	}
}

// validate parses the schema's request part and stores the typed value in
// the request context, where the endpoint reads it back with input.
func validate[T any](schema validators.Schema[T]) stage {
	return func(r *http.Request) (*http.Request, error) {
		value, err := schema.ParseRequest(r)
		if err != nil {
			return r, err
		}
		return r.WithContext(validators.WithInput(r.Context(), value)), nil
	}
}

func input[T any](r *http.Request) (T, error) {
	value, ok := validators.InputFromContext[T](r.Context())
	if !ok {
		return value, fmt.Errorf("%w: %T", errMissingInput, value)
	}
	return value, nil
}
