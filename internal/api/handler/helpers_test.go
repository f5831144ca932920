package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/model"
)

func riskID(r model.Risk) string { return r.ID }

func TestWriteList_NextCursorIsLastID(t *testing.T) {
	var got request.ListParams
	list := func(_ context.Context, p request.ListParams) ([]model.Risk, bool, error) {
		got = p
		return []model.Risk{{ID: "risk-b"}, {ID: "risk-a"}}, true, nil
	}

	rec := httptest.NewRecorder()
	writeList(rec, newRequest(http.MethodGet, "/risks?limit=2&search=ransomware", nil), list, riskID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, got.Limit)
	assert.Equal(t, "ransomware", got.Search)

	var body struct {
		Items      []model.Risk `json:"items"`
		NextCursor string       `json:"next_cursor"`
		HasMore    bool         `json:"has_more"`
	}
	require.NoError(t, decodeJSON(rec, &body))
	assert.Len(t, body.Items, 2)
	assert.Equal(t, "risk-a", body.NextCursor)
	assert.True(t, body.HasMore)
}

func TestWriteList_LastPageHasNoCursor(t *testing.T) {
	list := func(context.Context, request.ListParams) ([]model.Risk, bool, error) {
		return []model.Risk{{ID: "risk-a"}}, false, nil
	}

	rec := httptest.NewRecorder()
	writeList(rec, newRequest(http.MethodGet, "/risks", nil), list, riskID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "next_cursor")
}

func TestWriteRecord(t *testing.T) {
	get := func(_ context.Context, id string) (*model.Risk, error) {
		if id != "risk-a" {
			return nil, fmt.Errorf("risk %s: %w", id, core.ErrNotFound)
		}
		return &model.Risk{ID: id}, nil
	}

	rec := httptest.NewRecorder()
	writeRecord(rec, withChiURLParam(newRequest(http.MethodGet, "/risks/risk-a", nil), "id", "risk-a"), get)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	writeRecord(rec, withChiURLParam(newRequest(http.MethodGet, "/risks/otro", nil), "id", "otro"), get)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	writeRecord(rec, withChiURLParam(newRequest(http.MethodGet, "/risks/", nil), "id", ""), get)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
