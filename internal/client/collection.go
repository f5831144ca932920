package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// maxListItems bounds how many records List pulls for interactive use.
const maxListItems = 1000

// Collection is a REST collection seen as a list/create source. T is the
// record type and F the creation form posted as JSON.
type Collection[T, F any] struct {
	client *Client
	path   string
	query  url.Values
}

// NewCollection binds the collection at path, e.g. "/incidents". query is
// sent with every listing.
func NewCollection[T, F any](c *Client, path string, query url.Values) *Collection[T, F] {
	return &Collection[T, F]{client: c, path: path, query: query}
}

// List follows cursors until the collection is exhausted or maxListItems
// records were read.
func (c *Collection[T, F]) List(ctx context.Context) ([]T, error) {
	q := url.Values{}
	for k, v := range c.query {
		q[k] = v
	}
	q.Set("limit", strconv.Itoa(200))

	var out []T
	for {
		resp, err := c.client.Get(ctx, c.path, q)
		if err != nil {
			return nil, err
		}
		page, err := resp.Page()
		if err != nil {
			return nil, err
		}
		var items []T
		if err := json.Unmarshal(page.Items, &items); err != nil {
			return nil, fmt.Errorf("parse %s items: %w", c.path, err)
		}
		out = append(out, items...)
		if !page.HasMore || page.NextCursor == "" || len(out) >= maxListItems {
			return out, nil
		}
		q.Set("cursor", page.NextCursor)
	}
}

func (c *Collection[T, F]) Create(ctx context.Context, form F) (T, error) {
	var item T
	resp, err := c.client.Post(ctx, c.path, form)
	if err != nil {
		return item, err
	}
	err = resp.Decode(&item)
	return item, err
}

func (c *Collection[T, F]) Get(ctx context.Context, id string) (T, error) {
	var item T
	resp, err := c.client.Get(ctx, c.path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return item, err
	}
	err = resp.Decode(&item)
	return item, err
}
