package request

type SetSetting struct {
	Value string `json:"value" validate:"required"`
}
