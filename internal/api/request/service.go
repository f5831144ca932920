package request

type CreateService struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}
