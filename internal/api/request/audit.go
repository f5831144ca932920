package request

// CreateAudit takes recommendations as multi-line text, one per line.
type CreateAudit struct {
	Date            string `json:"date" validate:"required,date"`
	Scope           string `json:"scope" validate:"required,notblank,max=255"`
	Result          string `json:"result" validate:"omitempty,max=255"`
	Status          string `json:"status" validate:"omitempty,oneof=planned in_progress completed"`
	Recommendations string `json:"recommendations"`
}
