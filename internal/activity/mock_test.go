package activity

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// mockDB stands in for the pool behind core.DB. Expectations match on the
// SQL text and receive the arguments as one slice.
type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *mockDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	rows, _ := args.Get(0).(pgx.Rows)
	return rows, args.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	return m.Called(ctx, sql, arguments).Get(0).(pgx.Row)
}

type scanFunc func(dest ...any) error

// fakeRow answers a single QueryRow.
type fakeRow scanFunc

func (f fakeRow) Scan(dest ...any) error { return f(dest...) }

// fakeRows yields one row per scan function. Methods the activities never
// call fall through to the nil embedded interface.
type fakeRows struct {
	pgx.Rows
	pending []scanFunc
	current scanFunc
}

func newFakeRows(rows ...scanFunc) *fakeRows {
	return &fakeRows{pending: rows}
}

func (r *fakeRows) Next() bool {
	if len(r.pending) == 0 {
		return false
	}
	r.current, r.pending = r.pending[0], r.pending[1:]
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return r.current(dest...) }
func (r *fakeRows) Err() error             { return nil }
func (r *fakeRows) Close()                 {}
