package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/model"
)

func slaScan(id string, target, current float64) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*string)) = id
		*(dest[1].(*string)) = "Disponibilidad"
		*(dest[2].(*string)) = ""
		*(dest[3].(*float64)) = target
		*(dest[4].(*float64)) = current
		*(dest[5].(*model.SLAStatus)) = model.SLACompliant
		*(dest[6].(*time.Time)) = time.Now()
		*(dest[7].(*time.Time)) = time.Now()
		return nil
	}
}

func newSLAHandler(db *handlerMockDB) *SLA {
	return NewSLA(core.NewSLAService(db))
}

func TestSLAList(t *testing.T) {
	db := &handlerMockDB{}
	h := newSLAHandler(db)

	rows := newMockRows(slaScan("sla-2", 99.9, 99.95), slaScan("sla-1", 99, 90), slaScan("sla-0", 99, 99))
	db.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	rec := httptest.NewRecorder()
	h.List(rec, newRequest(http.MethodGet, "/slas?limit=2&status=at_risk,non_compliant", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items      []model.SLA `json:"items"`
		NextCursor string      `json:"next_cursor"`
		HasMore    bool        `json:"has_more"`
	}
	require.NoError(t, decodeJSON(rec, &body))
	assert.Len(t, body.Items, 2)
	assert.True(t, body.HasMore)
	assert.Equal(t, "sla-1", body.NextCursor)

	args := db.Calls[0].Arguments.Get(2).([]any)
	assert.Contains(t, args, []string{"at_risk", "non_compliant"})
}

func TestSLACreate_InvalidJSON(t *testing.T) {
	h := newSLAHandler(nil)
	rec := httptest.NewRecorder()

	h.Create(rec, newRequestRaw(http.MethodPost, "/slas", "{bad json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(rec).Error, "invalid JSON")
}

func TestSLACreate_ValidationFields(t *testing.T) {
	h := newSLAHandler(nil)
	rec := httptest.NewRecorder()

	h.Create(rec, newRequest(http.MethodPost, "/slas", map[string]any{
		"name":          "  ",
		"target":        120,
		"current_value": -1,
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body.Error, "validation error")
	assert.Contains(t, body.Fields, "name")
	assert.Contains(t, body.Fields, "target")
	assert.Contains(t, body.Fields, "current_value")
}

func TestSLACreate_MissingPercentages(t *testing.T) {
	h := newSLAHandler(nil)
	rec := httptest.NewRecorder()

	h.Create(rec, newRequest(http.MethodPost, "/slas", map[string]any{"name": "Disponibilidad"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Equal(t, "is required", body.Fields["target"])
	assert.Equal(t, "is required", body.Fields["current_value"])
}

func TestSLACreate_DerivesStatus(t *testing.T) {
	db := &handlerMockDB{}
	h := newSLAHandler(db)
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/slas", map[string]any{
		"name":          "Tiempo de respuesta",
		"target":        95,
		"current_value": 91,
		"status":        "compliant",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var sla model.SLA
	require.NoError(t, decodeJSON(rec, &sla))
	assert.NotEmpty(t, sla.ID)
	assert.Equal(t, model.SLAAtRisk, sla.Status)
	db.AssertExpectations(t)
}

func TestSLAGet_NotFound(t *testing.T) {
	db := &handlerMockDB{}
	h := newSLAHandler(db)
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(errRow(pgx.ErrNoRows))

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/slas/missing", nil), "id", "missing")
	h.Get(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSLAGet_EmptyID(t *testing.T) {
	h := newSLAHandler(nil)
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodGet, "/slas/", nil), "id", "")

	h.Get(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(rec).Error, "missing required ID")
}

func TestSLAUpdate_EmptyPatch(t *testing.T) {
	h := newSLAHandler(&handlerMockDB{})
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodPatch, "/slas/"+validID, map[string]any{}), "id", validID)

	h.Update(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(rec).Error, "no fields to update")
}

func TestSLAUpdate_Recomputes(t *testing.T) {
	db := &handlerMockDB{}
	h := newSLAHandler(db)
	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&handlerMockRow{scanFunc: slaScan(validID, 99, 99.5)})
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodPatch, "/slas/"+validID, map[string]any{
		"current_value": 80,
	}), "id", validID)
	h.Update(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var sla model.SLA
	require.NoError(t, decodeJSON(rec, &sla))
	assert.Equal(t, model.SLANonCompliant, sla.Status)
	assert.Equal(t, 80.0, sla.CurrentValue)
}

func TestSLAUpdate_OutOfRange(t *testing.T) {
	h := newSLAHandler(nil)
	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodPatch, "/slas/"+validID, map[string]any{
		"target": 0,
	}), "id", validID)

	h.Update(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, decodeJSON(rec, &body))
	assert.Contains(t, body.Fields, "target")
}
