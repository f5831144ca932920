package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
)

// writeList answers a collection listing. The cursor of the next page is
// the id of the last record returned.
func writeList[T any](w http.ResponseWriter, r *http.Request,
	list func(context.Context, request.ListParams) ([]T, bool, error), id func(T) string,
) {
	items, hasMore, err := list(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}

	var nextCursor string
	if hasMore && len(items) > 0 {
		nextCursor = id(items[len(items)-1])
	}
	response.WritePaginated(w, http.StatusOK, items, nextCursor, hasMore)
}

// writeRecord answers a lookup by the {id} route parameter.
func writeRecord[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, string) (*T, error)) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	rec, err := get(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, rec)
}

// idParam reads the {id} route parameter, answering 400 when it is empty.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return id, true
}

// strPtr returns nil for an empty string.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
