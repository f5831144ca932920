package request

// CreateIncident creates an incident or a service request. Type defaults to
// incident unless the route implies a request.
type CreateIncident struct {
	Title       string  `json:"title" validate:"required,notblank,max=255"`
	Description string  `json:"description" validate:"required,notblank"`
	Priority    string  `json:"priority" validate:"required,oneof=low medium high critical"`
	Type        string  `json:"type" validate:"omitempty,oneof=incident request"`
	Category    string  `json:"category" validate:"required,oneof=hardware software network access other"`
	ServiceID   *string `json:"service_id" validate:"omitempty,notblank"`
}
