package request

type CreateProblem struct {
	Description string `json:"description" validate:"required,notblank"`
	RootCause   string `json:"root_cause"`
	Solution    string `json:"solution"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	Category    string `json:"category" validate:"required,oneof=infrastructure application network security process"`
}
