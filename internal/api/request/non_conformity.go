package request

type CreateNonConformity struct {
	Description      string `json:"description" validate:"required,notblank"`
	Cause            string `json:"cause" validate:"required,notblank"`
	CorrectiveAction string `json:"corrective_action" validate:"required,notblank"`
	Category         string `json:"category" validate:"required,oneof=iso_20000 iso_9001 sla process documentation"`
	Severity         string `json:"severity" validate:"required,oneof=minor major critical"`
}
