package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type Problem struct {
	svc *core.ProblemService
}

func NewProblem(svc *core.ProblemService) *Problem {
	return &Problem{svc: svc}
}

// List godoc
//
//	@Summary		List problems
//	@Description	Returns problems newest first. Search matches description and root cause.
//	@Tags			Problems
//	@Param			limit		query		int		false	"Page size"	default(50)
//	@Param			cursor		query		string	false	"Pagination cursor"
//	@Param			search		query		string	false	"Search term"
//	@Param			status		query		string	false	"Comma-separated statuses"
//	@Param			priority	query		string	false	"Filter by priority"
//	@Param			category	query		string	false	"Filter by category"
//	@Success		200			{object}	response.PaginatedResponse{items=[]model.Problem}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/problems [get]
func (h *Problem) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Problem) string { return v.ID })
}

// Create godoc
//
//	@Summary		Record a problem
//	@Description	The problem starts investigating when a root cause is given and open otherwise.
//	@Tags			Problems
//	@Param			body	body		request.CreateProblem	true	"Problem details"
//	@Success		201		{object}	model.Problem
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/problems [post]
func (h *Problem) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProblem
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	problem := &model.Problem{
		Description: req.Description,
		RootCause:   strPtr(req.RootCause),
		Solution:    strPtr(req.Solution),
		Priority:    model.Priority(req.Priority),
		Category:    model.ProblemCategory(req.Category),
	}
	if err := h.svc.Create(r.Context(), problem); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("problems")
	response.WriteJSON(w, http.StatusCreated, problem)
}

// Get godoc
//
//	@Summary		Get a problem
//	@Tags			Problems
//	@Param			id	path		string	true	"Problem ID"
//	@Success		200	{object}	model.Problem
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/problems/{id} [get]
func (h *Problem) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
