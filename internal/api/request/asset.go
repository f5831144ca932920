package request

type CreateAsset struct {
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Type        string  `json:"type" validate:"required,oneof=hardware software service"`
	Status      string  `json:"status" validate:"omitempty,oneof=operational maintenance non_operational"`
	ServiceID   *string `json:"service_id" validate:"omitempty,notblank"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required,notblank,max=255"`
}
