package client

import (
	"context"
	"net/http"
	"net/url"
)

// Section is the CRUD surface of one resume section. P is the plain record,
// W its wire form.
type Section[P, W any] struct {
	c        *Client
	path     string
	toWire   func(P) (W, error)
	fromWire func(W) P
}

func newSection[P, W any](c *Client, path string, toWire func(P) (W, error), fromWire func(W) P) Section[P, W] {
	return Section[P, W]{c: c, path: apiPrefix + path, toWire: toWire, fromWire: fromWire}
}

func (s Section[P, W]) List(ctx context.Context) ([]P, error) {
	ws, err := call[[]W](ctx, s.c, http.MethodGet, s.path, nil)
	if err != nil {
		return nil, err
	}
	out := make([]P, 0, len(ws))
	for _, w := range ws {
		out = append(out, s.fromWire(w))
	}
	return out, nil
}

// Add stores item and returns the stored record carrying its backend id.
func (s Section[P, W]) Add(ctx context.Context, item P) (P, error) {
	var zero P
	w, err := s.toWire(item)
	if err != nil {
		return zero, err
	}
	stored, err := call[W](ctx, s.c, http.MethodPost, s.path, w)
	if err != nil {
		return zero, err
	}
	return s.fromWire(stored), nil
}

// UpdateBatch writes all items in one request; the server applies all or none.
func (s Section[P, W]) UpdateBatch(ctx context.Context, items []P) error {
	ws := make([]W, 0, len(items))
	for _, item := range items {
		w, err := s.toWire(item)
		if err != nil {
			return err
		}
		ws = append(ws, w)
	}
	_, err := call[bool](ctx, s.c, http.MethodPut, s.path, ws)
	return err
}

func (s Section[P, W]) Delete(ctx context.Context, id string) error {
	_, err := call[bool](ctx, s.c, http.MethodDelete, s.path+"/"+url.PathEscape(id), nil)
	return err
}
