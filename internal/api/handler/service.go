package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type Service struct {
	svc *core.CatalogService
}

func NewService(svc *core.CatalogService) *Service {
	return &Service{svc: svc}
}

// List godoc
//
//	@Summary		List services
//	@Description	Returns the service catalog newest first. Search matches name and description.
//	@Tags			Services
//	@Param			limit	query		int		false	"Page size"	default(50)
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			search	query		string	false	"Search term"
//	@Param			status	query		string	false	"Comma-separated statuses"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.Service}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/services [get]
func (h *Service) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Service) string { return v.ID })
}

// Create godoc
//
//	@Summary		Create a service
//	@Tags			Services
//	@Param			body	body		request.CreateService	true	"Service details"
//	@Success		201		{object}	model.Service
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/services [post]
func (h *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateService
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ServiceStatus(req.Status),
	}
	if err := h.svc.Create(r.Context(), svc); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("services")
	response.WriteJSON(w, http.StatusCreated, svc)
}

// Get godoc
//
//	@Summary		Get a service
//	@Tags			Services
//	@Param			id	path		string	true	"Service ID"
//	@Success		200	{object}	model.Service
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/services/{id} [get]
func (h *Service) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
