package request

import (
	"net/url"
	"strconv"
)

// Page limits apply to every list endpoint and to report exports.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Page is the keyset window requested by a list call. Cursor is the id of
// the last record of the previous page.
type Page struct {
	Limit  int
	Cursor string
}

// ParsePage reads limit and cursor. A missing, malformed or non-positive
// limit falls back to DefaultLimit and anything above MaxLimit is capped.
func ParsePage(q url.Values) Page {
	return Page{Limit: clampLimit(q.Get("limit")), Cursor: q.Get("cursor")}
}

func clampLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	switch {
	case err != nil, n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}
