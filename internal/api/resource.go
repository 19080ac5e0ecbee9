package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ResourceSpec describes where a resource lives on the backend. Path patterns
// contain a single %s replaced by the escaped id.
type ResourceSpec struct {
	Name       string
	ListPath   string
	DetailPath string
	CreatePath string
	ItemPath   string
	DeletePath string
	Sort       SortSpec
	// UpdateMethod defaults to PATCH.
	UpdateMethod string
}

// Resource is the generic client for one backend collection.
type Resource[Row any, D any] struct {
	client *Client
	spec   ResourceSpec
}

// NewResource binds spec to c
func NewResource[Row any, D any](c *Client, spec ResourceSpec) *Resource[Row, D] {
	return &Resource[Row, D]{client: c, spec: spec}
}

// Spec returns the resource description
func (r *Resource[Row, D]) Spec() ResourceSpec {
	return r.spec
}

// Client returns the underlying transport
func (r *Resource[Row, D]) Client() *Client {
	return r.client
}

// Status is the body of delete and other acknowledgement endpoints
type Status struct {
	Status  *bool  `json:"status,omitempty" yaml:"status,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// List fetches one page from the default list path.
func (r *Resource[Row, D]) List(ctx context.Context, q ListQuery, extra map[string]string) (ListResult[Row], error) {
	return r.ListAt(ctx, r.spec.ListPath, q, extra)
}

// ListAt fetches one page from an alternative list path of the same resource.
// Sort fields are resolved against the allow-list before building parameters.
func (r *Resource[Row, D]) ListAt(ctx context.Context, path string, q ListQuery, extra map[string]string) (ListResult[Row], error) {
	if r.spec.Sort.ClientSide {
		q.SortBy, q.SortDir = "", ""
	} else if len(r.spec.Sort.Allowed) > 0 {
		r.spec.Sort.Apply(&q)
	}

	resp, err := r.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  BuildParams(q, extra),
	})
	if err != nil {
		return ListResult[Row]{}, err
	}
	return Normalize[Row](resp.Body)
}

// Get fetches one entity by id.
func (r *Resource[Row, D]) Get(ctx context.Context, id string) (Detail[D], error) {
	if r.spec.DetailPath == "" {
		return Detail[D]{}, unsupported(r.spec.Name, "detail")
	}
	resp, err := r.client.Do(ctx, Request{Method: http.MethodGet, Path: ItemPath(r.spec.DetailPath, id)})
	if err != nil {
		return Detail[D]{}, err
	}
	return NormalizeDetail[D](resp.Body)
}

// Create posts payload, JSON or *FormData, and returns the created row.
func (r *Resource[Row, D]) Create(ctx context.Context, payload interface{}) (Row, error) {
	var zero Row
	if r.spec.CreatePath == "" {
		return zero, unsupported(r.spec.Name, "create")
	}
	return r.mutate(ctx, http.MethodPost, r.spec.CreatePath, payload)
}

// Update sends payload to the item path and returns the updated row.
func (r *Resource[Row, D]) Update(ctx context.Context, id string, payload interface{}) (Row, error) {
	var zero Row
	if r.spec.ItemPath == "" {
		return zero, unsupported(r.spec.Name, "update")
	}
	method := r.spec.UpdateMethod
	if method == "" {
		method = http.MethodPatch
	}
	return r.mutate(ctx, method, ItemPath(r.spec.ItemPath, id), payload)
}

// Delete removes an entity. A body with status false is reported as an error
// carrying the backend message.
func (r *Resource[Row, D]) Delete(ctx context.Context, id string) (*Status, error) {
	pattern := r.spec.DeletePath
	if pattern == "" {
		pattern = r.spec.ItemPath
	}
	if pattern == "" {
		return nil, unsupported(r.spec.Name, "delete")
	}
	return r.Acknowledge(ctx, Request{Method: http.MethodDelete, Path: ItemPath(pattern, id)}, "Delete failed")
}

// Acknowledge sends req and decodes a {status, message} body.
func (r *Resource[Row, D]) Acknowledge(ctx context.Context, req Request, failure string) (*Status, error) {
	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Status  *bool           `json:"status"`
		Message json.RawMessage `json:"message"`
	}
	_ = json.Unmarshal(resp.Body, &probe)

	st := &Status{Status: probe.Status}
	if probe.Status != nil && !*probe.Status {
		msg := ExtractMessage(resp.Body, errors.New(failure))
		if msg == "" {
			msg = failure
		}
		return nil, &BackendRejection{StatusCode: resp.StatusCode, Message: msg, Payload: resp.Body}
	}
	_ = json.Unmarshal(probe.Message, &st.Message)
	return st, nil
}

func (r *Resource[Row, D]) mutate(ctx context.Context, method, path string, payload interface{}) (Row, error) {
	var zero Row
	resp, err := r.client.Do(ctx, Request{Method: method, Path: path, Body: payload})
	if err != nil {
		return zero, err
	}
	d, err := NormalizeDetail[Row](resp.Body)
	if err != nil {
		return zero, err
	}
	return d.Data, nil
}

// ItemPath expands a %s pattern with the escaped id
func ItemPath(pattern, id string) string {
	if !strings.Contains(pattern, "%s") {
		return pattern
	}
	return fmt.Sprintf(pattern, url.PathEscape(id))
}

func unsupported(resource, op string) error {
	return fmt.Errorf("%s does not support %s", resource, op)
}
