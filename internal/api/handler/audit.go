package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
	"github.com/corpac/coba/internal/validation"
)

type Audit struct {
	svc *core.AuditService
}

func NewAudit(svc *core.AuditService) *Audit {
	return &Audit{svc: svc}
}

// List godoc
//
//	@Summary		List audits
//	@Description	Returns audits newest first. Search matches scope and result.
//	@Tags			Audits
//	@Param			limit	query		int		false	"Page size"	default(50)
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			search	query		string	false	"Search term"
//	@Param			status	query		string	false	"Comma-separated statuses"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.Audit}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/audits [get]
func (h *Audit) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Audit) string { return v.ID })
}

// Create godoc
//
//	@Summary		Create an audit
//	@Description	Schedules an audit. Recommendations are given one per line; a missing result defaults to "Programado".
//	@Tags			Audits
//	@Param			body	body		request.CreateAudit	true	"Audit details"
//	@Success		201		{object}	model.Audit
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/audits [post]
func (h *Audit) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAudit
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	audit := &model.Audit{
		Date:            date,
		Scope:           req.Scope,
		Result:          req.Result,
		Status:          model.AuditStatus(req.Status),
		Recommendations: rules.SplitRecommendations(req.Recommendations),
	}
	if err := h.svc.Create(r.Context(), audit); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("audits")
	response.WriteJSON(w, http.StatusCreated, audit)
}

// Get godoc
//
//	@Summary		Get an audit
//	@Tags			Audits
//	@Param			id	path		string	true	"Audit ID"
//	@Success		200	{object}	model.Audit
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/audits/{id} [get]
func (h *Audit) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
