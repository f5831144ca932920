package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		limit  int
		cursor string
	}{
		{"defaults", "", DefaultLimit, ""},
		{"explicit", "limit=25&cursor=INC482913", 25, "INC482913"},
		{"capped", "limit=500", MaxLimit, ""},
		{"not a number", "limit=veinte", DefaultLimit, ""},
		{"zero", "limit=0", DefaultLimit, ""},
		{"negative", "limit=-3", DefaultLimit, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			p := ParsePage(q)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.cursor, p.Cursor)
		})
	}
}
