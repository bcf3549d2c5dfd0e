package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

// unwrap walks the backend's response envelope down the given key chain and
// returns the innermost payload. The envelope nests content under "data",
// itself sometimes one level deeper or under a named collection field
// (e.g. data.data.branches).
func unwrap(body []byte, keys ...string) (json.RawMessage, error) {
	raw := json.RawMessage(body)
	for _, key := range keys {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, &core.APIError{Message: "malformed response envelope"}
		}
		inner, ok := m[key]
		if !ok || string(inner) == "null" {
			return nil, &core.APIError{Message: "response envelope missing " + key}
		}
		raw = inner
	}
	return raw, nil
}

// decode unwraps the envelope and decodes the payload into T.
func decode[T any](body []byte, keys ...string) (T, error) {
	var out T
	raw, err := unwrap(body, keys...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &core.APIError{Message: "malformed response payload"}
	}
	return out, nil
}

// resource is the shared CRUD surface every entity module instantiates.
// Paths follow the backend's verb-in-path convention:
// <base>/get-all, <base>/get-by-id/:id, <base>/create, <base>/update/:id,
// <base>/delete/:id.
type resource[T any] struct {
	c    *Client
	base string

	// envelope key chains; listKeys ends with the entity's collection field
	// when the backend names one (e.g. "data", "data", "branches").
	listKeys []string
	itemKeys []string
}

func (r resource[T]) list(ctx context.Context, query url.Values) ([]T, error) {
	body, err := r.c.get(ctx, r.base+"/get-all", query)
	if err != nil {
		return nil, err
	}
	return decode[[]T](body, r.listKeys...)
}

func (r resource[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	body, err := r.c.get(ctx, r.base+"/get-by-id/"+url.PathEscape(id), nil)
	if err != nil {
		return zero, err
	}
	return decode[T](body, r.itemKeys...)
}

func (r resource[T]) create(ctx context.Context, payload interface{}) (T, error) {
	var zero T
	body, err := r.c.postJSON(ctx, r.base+"/create", payload)
	if err != nil {
		return zero, err
	}
	return decode[T](body, r.itemKeys...)
}

func (r resource[T]) update(ctx context.Context, id string, payload interface{}) (T, error) {
	var zero T
	body, err := r.c.putJSON(ctx, r.base+"/update/"+url.PathEscape(id), payload)
	if err != nil {
		return zero, err
	}
	return decode[T](body, r.itemKeys...)
}

func (r resource[T]) remove(ctx context.Context, id string) error {
	_, err := r.c.delete(ctx, r.base+"/delete/"+url.PathEscape(id))
	return err
}
