package request

import (
	"net/http"
	"strings"
	"time"

	"github.com/corpac/coba/internal/validation"
)

// ListParams holds pagination, search and filter parameters shared by every
// collection. Filters a collection has no column for are ignored.
type ListParams struct {
	Limit    int
	Cursor   string
	Search   string
	Statuses []string
	Priority string
	Severity string
	Type     string
	Category string
	// From and To bound created_at by calendar day, both inclusive.
	From *time.Time
	To   *time.Time
}

// ParseListParams extracts list parameters from the query string. status
// accepts a comma-separated set, e.g. ?status=open,in_progress. from and to
// take YYYY-MM-DD dates; malformed dates are ignored.
func ParseListParams(r *http.Request) ListParams {
	q := r.URL.Query()
	pg := ParsePage(q)
	return ListParams{
		Limit:    pg.Limit,
		Cursor:   pg.Cursor,
		Search:   strings.TrimSpace(q.Get("search")),
		Statuses: splitSet(q.Get("status")),
		Priority: q.Get("priority"),
		Severity: q.Get("severity"),
		Type:     q.Get("type"),
		Category: q.Get("category"),
		From:     parseDate(q.Get("from")),
		To:       parseDate(q.Get("to")),
	}
}

func parseDate(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := validation.ParseDate(val)
	if err != nil {
		return nil
	}
	return &t
}

func splitSet(val string) []string {
	var out []string
	for _, v := range strings.Split(val, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
