package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type Risk struct {
	svc *core.RiskService
}

func NewRisk(svc *core.RiskService) *Risk {
	return &Risk{svc: svc}
}

// List godoc
//
//	@Summary		List risks
//	@Description	Returns risks newest first. Search matches description and mitigation.
//	@Tags			Risks
//	@Param			limit		query		int		false	"Page size"	default(50)
//	@Param			cursor		query		string	false	"Pagination cursor"
//	@Param			search		query		string	false	"Search term"
//	@Param			status		query		string	false	"Comma-separated statuses"
//	@Param			priority	query		string	false	"Filter by priority"
//	@Param			category	query		string	false	"Filter by category"
//	@Success		200			{object}	response.PaginatedResponse{items=[]model.Risk}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/risks [get]
func (h *Risk) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Risk) string { return v.ID })
}

// Create godoc
//
//	@Summary		Register a risk
//	@Tags			Risks
//	@Param			body	body		request.CreateRisk	true	"Risk details"
//	@Success		201		{object}	model.Risk
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/risks [post]
func (h *Risk) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRisk
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	risk := &model.Risk{
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
		Mitigation:  req.Mitigation,
		Category:    model.RiskCategory(req.Category),
	}
	if err := h.svc.Create(r.Context(), risk); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("risks")
	response.WriteJSON(w, http.StatusCreated, risk)
}

// Get godoc
//
//	@Summary		Get a risk
//	@Tags			Risks
//	@Param			id	path		string	true	"Risk ID"
//	@Success		200	{object}	model.Risk
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/risks/{id} [get]
func (h *Risk) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
