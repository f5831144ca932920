package handler

import (
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type Asset struct {
	svc *core.AssetService
}

func NewAsset(svc *core.AssetService) *Asset {
	return &Asset{svc: svc}
}

// List godoc
//
//	@Summary		List assets
//	@Description	Returns configuration items newest first. Search matches name and location.
//	@Tags			Assets
//	@Param			limit	query		int		false	"Page size"	default(50)
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			search	query		string	false	"Search term"
//	@Param			status	query		string	false	"Comma-separated statuses"
//	@Param			type	query		string	false	"hardware, software or service"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.Asset}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/assets [get]
func (h *Asset) List(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.svc.List, func(v model.Asset) string { return v.ID })
}

// Create godoc
//
//	@Summary		Register an asset
//	@Tags			Assets
//	@Param			body	body		request.CreateAsset	true	"Asset details"
//	@Success		201		{object}	model.Asset
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/assets [post]
func (h *Asset) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAsset
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	asset := &model.Asset{
		Name:        req.Name,
		Type:        model.AssetType(req.Type),
		Status:      model.AssetStatus(req.Status),
		ServiceID:   req.ServiceID,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := h.svc.Create(r.Context(), asset); err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	metrics.RecordCreated("assets")
	response.WriteJSON(w, http.StatusCreated, asset)
}

// Get godoc
//
//	@Summary		Get an asset
//	@Tags			Assets
//	@Param			id	path		string	true	"Asset ID"
//	@Success		200	{object}	model.Asset
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/assets/{id} [get]
func (h *Asset) Get(w http.ResponseWriter, r *http.Request) {
	writeRecord(w, r, h.svc.GetByID)
}
