package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/model"
)

type ISO struct {
	svc *core.ISOService
}

func NewISO(svc *core.ISOService) *ISO {
	return &ISO{svc: svc}
}

// List godoc
//
//	@Summary		ISO compliance overview
//	@Description	Returns every tracked standard with its clauses and compliance percentage.
//	@Tags			ISO
//	@Success		200	{array}	model.ISOCompliance
//	@Router			/iso [get]
func (h *ISO) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.svc.All())
}

// Get godoc
//
//	@Summary		ISO compliance for one standard
//	@Description	Maps each clause of the standard to its status and the module that evidences it. Percentage is round(100 * compliant / total).
//	@Tags			ISO
//	@Param			standard	path		string	true	"iso20000 or iso9001"
//	@Success		200			{object}	model.ISOCompliance
//	@Failure		404			{object}	response.ErrorResponse
//	@Router			/iso/{standard} [get]
func (h *ISO) Get(w http.ResponseWriter, r *http.Request) {
	standard := model.ISOStandard(chi.URLParam(r, "standard"))

	c, err := h.svc.Get(standard)
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, c)
}
