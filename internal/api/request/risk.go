package request

type CreateRisk struct {
	Description string `json:"description" validate:"required,notblank"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	Mitigation  string `json:"mitigation" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,oneof=operational technical security compliance financial"`
}
