package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/pkg/api"
	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

// Collection binds the shared HTTP client to one REST collection. Every list
// page in the console is an instantiation of this type plus a column set.
type Collection[T any] struct {
	client *api.Client
	path   string
}

// NewCollection builds a binding for the given collection path, e.g.
// "/courses".
func NewCollection[T any](client *api.Client, path string) *Collection[T] {
	return &Collection[T]{client: client, path: path}
}

// List fetches one page, serialising the query state as URL parameters.
func (c *Collection[T]) List(ctx context.Context, query models.ListQuery) ([]T, int, error) {
	raw, total, err := c.client.GetCollection(ctx, c.path+"/", queryValues(query))
	if err != nil {
		return nil, 0, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrAPI.Code, 0, "unexpected collection item shape")
	}
	return items, total, nil
}

// Get fetches a single record, tolerating both a bare body and a {data:...}
// wrapper.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var raw json.RawMessage
	if err := c.client.Get(ctx, c.path+"/"+id+"/", nil, &raw); err != nil {
		return nil, err
	}
	return decodeRecord[T](raw)
}

// Create posts a new record and returns the created row.
func (c *Collection[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	var raw json.RawMessage
	if err := c.client.Post(ctx, c.path+"/", payload, &raw); err != nil {
		return nil, err
	}
	return decodeRecord[T](raw)
}

// Update replaces a record via PUT and returns the updated row.
func (c *Collection[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	var raw json.RawMessage
	if err := c.client.Put(ctx, c.path+"/"+id+"/", payload, &raw); err != nil {
		return nil, err
	}
	return decodeRecord[T](raw)
}

// Patch applies a partial update and returns the updated row.
func (c *Collection[T]) Patch(ctx context.Context, id string, payload interface{}) (*T, error) {
	var raw json.RawMessage
	if err := c.client.Patch(ctx, c.path+"/"+id+"/", payload, &raw); err != nil {
		return nil, err
	}
	return decodeRecord[T](raw)
}

// Delete removes a record by id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, c.path+"/"+id+"/")
}

func decodeRecord[T any](raw json.RawMessage) (*T, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	body := raw
	if err := json.Unmarshal(raw, &envelope); err == nil &&
		len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		body = envelope.Data
	}
	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrAPI.Code, 0, "unexpected record shape")
	}
	return &record, nil
}

// queryValues serialises a ListQuery into the backend's query parameters.
func queryValues(q models.ListQuery) url.Values {
	values := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	for key, value := range q.Filters {
		values.Set(key, value)
	}
	if q.SortBy != "" {
		values.Set("sort", q.SortBy)
		order := q.SortOrder
		if order != "asc" && order != "desc" {
			order = "asc"
		}
		values.Set("order", order)
	}
	return values
}
