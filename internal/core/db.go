package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/corpac/coba/internal/api/request"
)

// DB is the subset of pgxpool.Pool the services use.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	// ErrNotFound is returned when a lookup by ID matches no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPatch is returned by updates that carry no fields.
	ErrInvalidPatch = errors.New("no fields to update")
	// ErrConflict is returned when a record is not in a state that allows
	// the requested transition.
	ErrConflict = errors.New("conflict")
)

// DefaultLimit is used when a caller passes no limit.
const DefaultLimit = 50

type scanner interface {
	Scan(dest ...any) error
}

// notFound maps pgx.ErrNoRows to ErrNotFound and wraps anything else.
func notFound(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("get %s %s: %w", what, id, err)
}

// listQuery builds the WHERE clause of a collection listing. Placeholders
// are numbered in the order arguments are added.
type listQuery struct {
	table      string
	conditions []string
	args       []any
}

func newListQuery(table string) *listQuery {
	return &listQuery{table: table}
}

func (q *listQuery) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *listQuery) where(cond string) {
	q.conditions = append(q.conditions, cond)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// search adds a case-insensitive substring match over any of cols. The term
// is matched literally: % and _ carry no wildcard meaning.
func (q *listQuery) search(term string, cols ...string) {
	if term == "" || len(cols) == 0 {
		return
	}
	p := q.arg("%" + likeEscaper.Replace(term) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf(`COALESCE(%s, '') ILIKE %s ESCAPE '\'`, c, p)
	}
	q.where("(" + strings.Join(parts, " OR ") + ")")
}

func (q *listQuery) equal(col, val string) {
	if val == "" {
		return
	}
	q.where(col + " = " + q.arg(val))
}

func (q *listQuery) in(col string, vals []string) {
	if len(vals) == 0 {
		return
	}
	q.where(col + " = ANY(" + q.arg(vals) + ")")
}

// createdWithin bounds created_at by calendar day, inclusive on both ends.
func (q *listQuery) createdWithin(from, to *time.Time) {
	if from != nil {
		q.where("created_at >= " + q.arg(*from))
	}
	if to != nil {
		q.where("created_at < " + q.arg(to.AddDate(0, 0, 1)))
	}
}

// cursor continues a newest-first listing after the row with the given ID.
func (q *listQuery) cursor(id string) {
	if id == "" {
		return
	}
	p := q.arg(id)
	q.where(fmt.Sprintf("(created_at, id) < (SELECT created_at, id FROM %s WHERE id = %s)", q.table, p))
}

// build returns the final SQL and arguments. One extra row is fetched so
// callers can tell whether another page exists.
func (q *listQuery) build(columns string, limit int) (string, []any) {
	sql := "SELECT " + columns + " FROM " + q.table
	if len(q.conditions) > 0 {
		sql += " WHERE " + strings.Join(q.conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC, id DESC LIMIT " + q.arg(limit+1)
	return sql, q.args
}

// applyCommon adds the filters every collection supports: search, status,
// creation date range and cursor.
func (q *listQuery) applyCommon(params request.ListParams, searchCols ...string) {
	q.search(params.Search, searchCols...)
	q.in("status", params.Statuses)
	q.createdWithin(params.From, params.To)
	q.cursor(params.Cursor)
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// collect scans every row with scan and trims the page to limit.
func collect[T any](rows pgx.Rows, limit int, what string, scan func(scanner) (T, error)) ([]T, bool, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan %s: %w", what, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate %s: %w", what, err)
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}
	return items, hasMore, nil
}

// collectAll scans every row without paging.
func collectAll[T any](rows pgx.Rows, what string, scan func(scanner) (T, error)) ([]T, error) {
	items, _, err := collect(rows, math.MaxInt, what, scan)
	return items, err
}
