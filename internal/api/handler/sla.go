package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type SLA struct {
	svc *core.SLAService
}

func NewSLA(svc *core.SLAService) *SLA {
	return &SLA{svc: svc}
}

// List godoc
//
//	@Summary		List SLAs
//	@Description	Returns SLAs newest first. Search matches the name; status accepts a comma-separated set such as at_risk,non_compliant.
//	@Tags			SLAs
//	@Param			limit	query		int		false	"Page size"	default(50)
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			search	query		string	false	"Search term"
//	@Param			status	query		string	false	"Comma-separated statuses"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.SLA}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/slas [get]
func (h *SLA) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.SLA) string { return v.ID })
}

// Create godoc
//
//	@Summary		Create an SLA
//	@Description	Stores an SLA. The status is derived from target and current value and cannot be supplied.
//	@Tags			SLAs
//	@Param			body	body		request.CreateSLA	true	"SLA details"
//	@Success		201		{object}	model.SLA
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/slas [post]
func (h *SLA) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSLA
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	sla := &model.SLA{
		Name:         req.Name,
		Description:  req.Description,
		Target:       *req.Target,
		CurrentValue: *req.CurrentValue,
	}
	if err := h.svc.Create(r.Context(), sla); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("slas")
	response.WriteJSON(w, http.StatusCreated, sla)
}

// Get godoc
//
//	@Summary		Get an SLA
//	@Tags			SLAs
//	@Param			id	path		string	true	"SLA ID"
//	@Success		200	{object}	model.SLA
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/slas/{id} [get]
func (h *SLA) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}

// Update godoc
//
//	@Summary		Update an SLA
//	@Description	Changes any of name, description, target and current value. Status and last_updated are recomputed.
//	@Tags			SLAs
//	@Param			id		path		string				true	"SLA ID"
//	@Param			body	body		request.UpdateSLA	true	"Fields to change"
//	@Success		200		{object}	model.SLA
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/slas/{id} [patch]
func (h *SLA) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.UpdateSLA
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	sla, err := h.svc.Update(r.Context(), id, core.SLAPatch{
		Name:         req.Name,
		Description:  req.Description,
		Target:       req.Target,
		CurrentValue: req.CurrentValue,
	})
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, sla)
}
