package controller

import (
	"context"
	"sync"
)

// Memory is an in-memory Source. Build turns a submitted form into the
// stored record (assigning ID and timestamps); records are listed newest
// first.
type Memory[T, F any] struct {
	mu    sync.Mutex
	items []T
	build func(F) (T, error)
}

// NewMemory seeds the collection with items, newest first.
func NewMemory[T, F any](items []T, build func(F) (T, error)) *Memory[T, F] {
	return &Memory[T, F]{items: append([]T(nil), items...), build: build}
}

func (m *Memory[T, F]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.items...), nil
}

func (m *Memory[T, F]) Create(_ context.Context, form F) (T, error) {
	item, err := m.build(form)
	if err != nil {
		var zero T
		return zero, err
	}

	m.mu.Lock()
	m.items = append([]T{item}, m.items...)
	m.mu.Unlock()
	return item, nil
}
