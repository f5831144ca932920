package request

type SendMessage struct {
	Content string `json:"content" validate:"required,notblank,max=4000"`
}
