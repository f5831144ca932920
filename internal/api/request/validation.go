package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/corpac/coba/internal/validation"
)

// Decode reads a JSON body into v and evaluates its validate tags. A
// validation failure wraps validation.Errors so handlers can report fields.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if errs := validation.Struct(v); errs != nil {
		return fmt.Errorf("validation error: %w", errs)
	}
	return nil
}

func RequireID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("missing required ID")
	}
	return s, nil
}
