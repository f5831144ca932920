package request

// CreateReport requests an asynchronous report. Dates are YYYY-MM-DD and
// the range is inclusive.
type CreateReport struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Type        string `json:"type" validate:"required,oneof=sla incidents audits non_conformities risks assets problems dashboard iso_compliance"`
	Format      string `json:"format" validate:"required,oneof=PDF Excel"`
	DateFrom    string `json:"date_from" validate:"required,date"`
	DateTo      string `json:"date_to" validate:"required,date,notbefore=DateFrom"`
	Description string `json:"description"`
}
