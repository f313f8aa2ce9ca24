package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Part identifies the piece of an HTTP request a schema applies to.
type Part string

const (
	PartParams  Part = "params"
	PartQuery   Part = "query"
	PartBody    Part = "body"
	PartHeaders Part = "headers"
)

// maxBodyBytes caps the size of a JSON body accepted by the validation layer.
const maxBodyBytes = 1 << 20

// readPart renders the requested part of r as a JSON object. Multi-valued
// query parameters and headers keep their first value. Header names are
// lower-cased.
func readPart(r *http.Request, part Part) ([]byte, error) {
	switch part {
	case PartBody:
		return readBody(r)
	case PartQuery:
		return marshalFirstValues(r.URL.Query(), strings.Clone)
	case PartHeaders:
		return marshalFirstValues(r.Header, strings.ToLower)
	case PartParams:
		values := make(map[string]string)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if key == "*" {
					continue
				}
				values[key] = rctx.URLParams.Values[i]
			}
		}
		return json.Marshal(values)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPart, part)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if len(raw) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return []byte("{}"), nil
	}

	return raw, nil
}

func marshalFirstValues(values map[string][]string, key func(string) string) ([]byte, error) {
	first := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		first[key(k)] = v[0]
	}
	return json.Marshal(first)
}
