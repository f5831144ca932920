package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/validation"
)

type Report struct {
	svc *core.ReportService
}

func NewReport(svc *core.ReportService) *Report {
	return &Report{svc: svc}
}

// List godoc
//
//	@Summary		List reports
//	@Description	Returns generated and pending reports newest first. Search matches the name.
//	@Tags			Reports
//	@Param			limit	query		int		false	"Page size"	default(50)
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			search	query		string	false	"Search term"
//	@Param			status	query		string	false	"Comma-separated statuses"
//	@Param			type	query		string	false	"Filter by report type"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.Report}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/reports [get]
func (h *Report) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Report) string { return v.ID })
}

// Create godoc
//
//	@Summary		Request a report
//	@Description	Stores the report as in_progress and starts a Temporal workflow that renders the file and completes it after the configured delay.
//	@Tags			Reports
//	@Param			body	body		request.CreateReport	true	"Report details"
//	@Success		201		{object}	model.Report
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/reports [post]
func (h *Report) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReport
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	from, err := validation.ParseDate(req.DateFrom)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := validation.ParseDate(req.DateTo)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := &model.Report{
		Name:        req.Name,
		Type:        model.ReportType(req.Type),
		Format:      model.ReportFormat(req.Format),
		DateFrom:    from,
		DateTo:      to,
		Description: req.Description,
	}
	if err := h.svc.Create(r.Context(), report); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("reports")
	response.WriteJSON(w, http.StatusCreated, report)
}

// Get godoc
//
//	@Summary		Get a report
//	@Tags			Reports
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	model.Report
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/reports/{id} [get]
func (h *Report) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}

// Cancel godoc
//
//	@Summary		Cancel a report
//	@Description	Stops generation of an in-progress report and marks it failed. Finished reports answer 409.
//	@Tags			Reports
//	@Param			id	path		string	true	"Report ID"
//	@Success		200	{object}	model.Report
//	@Failure		404	{object}	response.ErrorResponse
//	@Failure		409	{object}	response.ErrorResponse
//	@Router			/reports/{id}/cancel [post]
func (h *Report) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	report, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, report)
}
