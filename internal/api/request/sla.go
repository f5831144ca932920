package request

// CreateSLA holds the request body for creating an SLA. Status is derived
// and cannot be supplied.
type CreateSLA struct {
	Name         string   `json:"name" validate:"required,notblank,max=255"`
	Description  string   `json:"description"`
	Target       *float64 `json:"target" validate:"required,gte=0,lte=100"`
	CurrentValue *float64 `json:"current_value" validate:"required,gte=0,lte=100"`
}

type UpdateSLA struct {
	Name         *string  `json:"name" validate:"omitempty,notblank,max=255"`
	Description  *string  `json:"description"`
	Target       *float64 `json:"target" validate:"omitempty,gte=0,lte=100"`
	CurrentValue *float64 `json:"current_value" validate:"omitempty,gte=0,lte=100"`
}
