package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/validation"
)

// ErrorResponse is the body of every non-2xx answer. Fields is set only for
// validation failures and maps each offending field to its message.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteDecodeError answers a request.Decode failure with 400, listing the
// offending fields when the body failed validation.
func WriteDecodeError(w http.ResponseWriter, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: fields})
		return
	}
	WriteError(w, http.StatusBadRequest, err.Error())
}

// WriteServiceError maps an error returned by a core service to a status
// code. Unexpected errors are logged with the request logger and answered
// with a generic message.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation error: " + fields.Error(), Fields: fields})
	case errors.Is(err, core.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrInvalidPatch):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrConflict):
		WriteError(w, http.StatusConflict, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// PaginatedResponse wraps a list with pagination metadata.
type PaginatedResponse struct {
	Items      any    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// WritePaginated writes a paginated JSON response.
func WritePaginated(w http.ResponseWriter, status int, items any, nextCursor string, hasMore bool) {
	WriteJSON(w, status, PaginatedResponse{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	})
}
