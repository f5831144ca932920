package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
)

type Settings struct {
	svc *core.SettingsService
}

func NewSettings(svc *core.SettingsService) *Settings {
	return &Settings{svc: svc}
}

// List godoc
//
//	@Summary		List settings
//	@Tags			Settings
//	@Success		200	{array}		model.Setting
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/settings [get]
func (h *Settings) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetAll(r.Context())
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, settings)
}

// Set godoc
//
//	@Summary		Change a setting
//	@Description	Stores the value of a known key. customer_satisfaction takes an integer percentage and feeds the dashboard KPI.
//	@Tags			Settings
//	@Param			key		path		string				true	"Setting key"
//	@Param			body	body		request.SetSetting	true	"New value"
//	@Success		200		{object}	model.Setting
//	@Failure		400		{object}	response.ErrorResponse
//	@Router			/settings/{key} [put]
func (h *Settings) Set(w http.ResponseWriter, r *http.Request) {
	key, err := request.RequireID(chi.URLParam(r, "key"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.SetSetting
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	setting, err := h.svc.Set(r.Context(), key, req.Value)
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, setting)
}
