package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type NonConformity struct {
	svc *core.NonConformityService
}

func NewNonConformity(svc *core.NonConformityService) *NonConformity {
	return &NonConformity{svc: svc}
}

// List godoc
//
//	@Summary		List non-conformities
//	@Description	Returns non-conformities newest first. Search matches description and cause.
//	@Tags			NonConformities
//	@Param			limit		query		int		false	"Page size"	default(50)
//	@Param			cursor		query		string	false	"Pagination cursor"
//	@Param			search		query		string	false	"Search term"
//	@Param			status		query		string	false	"Comma-separated statuses"
//	@Param			severity	query		string	false	"Filter by severity"
//	@Param			category	query		string	false	"Filter by category"
//	@Success		200			{object}	response.PaginatedResponse{items=[]model.NonConformity}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/non-conformities [get]
func (h *NonConformity) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.NonConformity) string { return v.ID })
}

// Create godoc
//
//	@Summary		Record a non-conformity
//	@Description	New non-conformities always start open.
//	@Tags			NonConformities
//	@Param			body	body		request.CreateNonConformity	true	"Non-conformity details"
//	@Success		201		{object}	model.NonConformity
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/non-conformities [post]
func (h *NonConformity) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateNonConformity
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	nc := &model.NonConformity{
		Description:      req.Description,
		Cause:            req.Cause,
		CorrectiveAction: req.CorrectiveAction,
		Category:         model.NonConformityCategory(req.Category),
		Severity:         model.Severity(req.Severity),
	}
	if err := h.svc.Create(r.Context(), nc); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("non_conformities")
	response.WriteJSON(w, http.StatusCreated, nc)
}

// Get godoc
//
//	@Summary		Get a non-conformity
//	@Tags			NonConformities
//	@Param			id	path		string	true	"Non-conformity ID"
//	@Success		200	{object}	model.NonConformity
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/non-conformities/{id} [get]
func (h *NonConformity) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
