// Package controller implements the list/detail/create interaction shared by
// every collection: browse a filtered list, view one record read-only, and
// submit a validated creation form.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/corpac/coba/internal/validation"
)

// State is the interaction state of a Controller.
type State int

const (
	Browsing State = iota
	Viewing
	Creating
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Viewing:
		return "viewing"
	case Creating:
		return "creating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrNotFound is returned by View when no listed record has the ID.
	ErrNotFound = errors.New("record not found")
	// ErrNotCreating is returned by Submit outside the Creating state.
	ErrNotCreating = errors.New("no creation form open")
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(level Level, message string)
}

// Source is the collection a controller works on.
type Source[T, F any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, form F) (T, error)
}

// Options describe the records of one collection.
type Options[T any] struct {
	// Name is the singular noun used in notifications, e.g. "incidente".
	Name string
	ID   func(T) string
	// SearchText returns the fields the text filter matches against.
	SearchText func(T) []string
}

// Controller drives one collection. It is safe for concurrent use; when
// refreshes overlap the last one to finish wins.
type Controller[T, F any] struct {
	source   Source[T, F]
	notifier Notifier
	opts     Options[T]

	mu       sync.Mutex
	items    []T
	search   string
	state    State
	selected *T
}

func New[T, F any](source Source[T, F], notifier Notifier, opts Options[T]) *Controller[T, F] {
	return &Controller[T, F]{source: source, notifier: notifier, opts: opts}
}

// Refresh reloads the list. On failure the previous list is kept and an
// error notification is emitted.
func (c *Controller[T, F]) Refresh(ctx context.Context) error {
	items, err := c.source.List(ctx)
	if err != nil {
		c.notifier.Notify(LevelError, "No se pudo cargar la lista: "+err.Error())
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Controller[T, F]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetSearch sets the text filter applied by Visible.
func (c *Controller[T, F]) SetSearch(text string) {
	c.mu.Lock()
	c.search = strings.TrimSpace(text)
	c.mu.Unlock()
}

// Visible returns the listed records whose search fields contain the
// filter text, ignoring case. An empty filter returns every record.
func (c *Controller[T, F]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.search == "" {
		return append([]T(nil), c.items...)
	}
	needle := strings.ToLower(c.search)
	var out []T
	for _, item := range c.items {
		for _, field := range c.opts.SearchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// View selects a listed record and enters Viewing. It never touches the
// source.
func (c *Controller[T, F]) View(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.opts.ID(c.items[i]) == id {
			item := c.items[i]
			c.selected = &item
			c.state = Viewing
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %s: %w", c.opts.Name, id, ErrNotFound)
}

// Selected returns the record shown in Viewing.
func (c *Controller[T, F]) Selected() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Viewing || c.selected == nil {
		var zero T
		return zero, false
	}
	return *c.selected, true
}

// Close leaves Viewing or Creating without side effects.
func (c *Controller[T, F]) Close() {
	c.mu.Lock()
	c.state = Browsing
	c.selected = nil
	c.mu.Unlock()
}

// BeginCreate opens the creation form.
func (c *Controller[T, F]) BeginCreate() {
	c.mu.Lock()
	c.state = Creating
	c.selected = nil
	c.mu.Unlock()
}

// Submit validates the form and creates the record. Validation failures
// return the field messages and keep the form open. A source failure emits
// an error notification and keeps the form open. On success the controller
// returns to Browsing and refreshes the list.
func (c *Controller[T, F]) Submit(ctx context.Context, form F) (validation.Errors, error) {
	if c.State() != Creating {
		return nil, ErrNotCreating
	}

	if errs := validation.Struct(form); errs != nil {
		return errs, nil
	}

	if _, err := c.source.Create(ctx, form); err != nil {
		c.notifier.Notify(LevelError, "No se pudo crear el "+c.opts.Name+": "+err.Error())
		return nil, err
	}

	c.mu.Lock()
	c.state = Browsing
	c.mu.Unlock()

	c.notifier.Notify(LevelSuccess, capitalize(c.opts.Name)+" creado correctamente")
	// A failed refresh is already notified; the record was created.
	_ = c.Refresh(ctx)
	return nil, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
