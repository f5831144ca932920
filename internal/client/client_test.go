package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestCollection_ListFollowsCursor(t *testing.T) {
	var queries []url.Values
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/incidents", r.URL.Path)
		queries = append(queries, r.URL.Query())
		if r.URL.Query().Get("cursor") == "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"items":       []model.Incident{{ID: "INC000002"}},
				"next_cursor": "INC000002",
				"has_more":    true,
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"items":    []model.Incident{{ID: "INC000001"}},
			"has_more": false,
		})
	})

	col := NewCollection[model.Incident, request.CreateIncident](c, "/incidents", url.Values{"status": {"open"}})
	items, err := col.List(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "INC000002", items[0].ID)
	assert.Equal(t, "INC000001", items[1].ID)
	require.Len(t, queries, 2)
	assert.Equal(t, "open", queries[0].Get("status"))
	assert.Equal(t, "200", queries[0].Get("limit"))
	assert.Equal(t, "INC000002", queries[1].Get("cursor"))
}

func TestCollection_Create(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body request.CreateRisk
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, model.Risk{ID: "r-1", Description: body.Description, Status: model.RiskOpen})
	})

	col := NewCollection[model.Risk, request.CreateRisk](c, "/risks", nil)
	risk, err := col.Create(context.Background(), request.CreateRisk{Description: "Pérdida de datos", Priority: "high", Mitigation: "Backups", Category: "technical"})
	require.NoError(t, err)

	assert.Equal(t, "r-1", risk.ID)
	assert.Equal(t, "Pérdida de datos", risk.Description)
}

func TestCollection_CreateValidationError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation error: title: is required",
			"fields": map[string]string{"title": "is required"},
		})
	})

	col := NewCollection[model.Incident, request.CreateIncident](c, "/incidents", nil)
	_, err := col.Create(context.Background(), request.CreateIncident{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "is required", apiErr.Fields["title"])
	assert.Contains(t, err.Error(), "title: is required")
}

func TestCollection_GetNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/slas/missing", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	col := NewCollection[model.SLA, request.CreateSLA](c, "/slas", nil)
	_, err := col.Get(context.Background(), "missing")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Message)
}

func TestClient_NonJSONError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Dashboard(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_Dashboard(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dashboard", r.URL.Path)
		writeJSON(w, http.StatusOK, model.DashboardSnapshot{KPIs: model.KPIs{ActiveIncidents: 2, SLACompliance: 75}})
	})

	snap, err := c.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, snap.KPIs.ActiveIncidents)
	assert.Equal(t, 75, snap.KPIs.SLACompliance)
}

func TestClient_SendMessageCarriesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/assistant/conversations/c-1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get(AssistantKeyHeader))
		var body request.SendMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, model.Reply{Turn: model.ChatTurn{Role: model.RoleAssistant, Content: "eco: " + body.Content}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test")
	reply, err := c.SendMessage(context.Background(), "c-1", "hola")
	require.NoError(t, err)

	assert.Equal(t, "eco: hola", reply.Turn.Content)
	assert.False(t, reply.Fallback)
}
