package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type Incident struct {
	svc *core.IncidentService
}

func NewIncident(svc *core.IncidentService) *Incident {
	return &Incident{svc: svc}
}

// List godoc
//
//	@Summary		List incidents and requests
//	@Description	Returns incidents and service requests newest first. Search matches title and description.
//	@Tags			Incidents
//	@Param			limit		query		int		false	"Page size"	default(50)
//	@Param			cursor		query		string	false	"Pagination cursor"
//	@Param			search		query		string	false	"Search term"
//	@Param			status		query		string	false	"Comma-separated statuses"
//	@Param			priority	query		string	false	"Filter by priority"
//	@Param			type		query		string	false	"incident or request"
//	@Param			category	query		string	false	"Filter by category"
//	@Success		200			{object}	response.PaginatedResponse{items=[]model.Incident}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/incidents [get]
func (h *Incident) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Incident) string { return v.ID })
}

// Create godoc
//
//	@Summary		Create an incident
//	@Description	Opens an incident with an INC ticket ID, or a service request with a REQ ID when type is request (body field or ?type=request). A service reference must point at an active service.
//	@Tags			Incidents
//	@Param			type	query		string					false	"incident or request"
//	@Param			body	body		request.CreateIncident	true	"Incident details"
//	@Success		201		{object}	model.Incident
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/incidents [post]
func (h *Incident) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, model.IncidentType(r.URL.Query().Get("type")))
}

// CreateRequest godoc
//
//	@Summary		Create a service request
//	@Tags			Incidents
//	@Param			body	body		request.CreateIncident	true	"Request details"
//	@Success		201		{object}	model.Incident
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/requests [post]
func (h *Incident) CreateRequest(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, model.TypeRequest)
}

func (h *Incident) create(w http.ResponseWriter, r *http.Request, routeType model.IncidentType) {
	if routeType != "" && !routeType.Valid() {
		response.WriteError(w, http.StatusBadRequest, "type must be one of: incident, request")
		return
	}

	var req request.CreateIncident
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	incType := model.IncidentType(req.Type)
	if incType == "" {
		incType = routeType
	}

	inc := &model.Incident{
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
		Type:        incType,
		Category:    model.IncidentCategory(req.Category),
		ServiceID:   req.ServiceID,
	}
	if err := h.svc.Create(r.Context(), inc); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("incidents")
	response.WriteJSON(w, http.StatusCreated, inc)
}

// Get godoc
//
//	@Summary		Get an incident
//	@Tags			Incidents
//	@Param			id	path		string	true	"Ticket ID"
//	@Success		200	{object}	model.Incident
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/incidents/{id} [get]
func (h *Incident) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
