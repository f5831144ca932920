package model

import "time"

type ReportStatus string

const (
	ReportInProgress ReportStatus = "in_progress"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportInProgress, ReportCompleted, ReportFailed:
		return true
	}
	return false
}

type ReportFormat string

const (
	FormatPDF   ReportFormat = "PDF"
	FormatExcel ReportFormat = "Excel"
)

func (f ReportFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatExcel:
		return true
	}
	return false
}

// Extension returns the file extension used for generated files.
func (f ReportFormat) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return "pdf"
}

// ReportType selects which data a report covers.
type ReportType string

const (
	ReportSLA             ReportType = "sla"
	ReportIncidents       ReportType = "incidents"
	ReportAudits          ReportType = "audits"
	ReportNonConformities ReportType = "non_conformities"
	ReportRisks           ReportType = "risks"
	ReportAssets          ReportType = "assets"
	ReportProblems        ReportType = "problems"
	ReportDashboard       ReportType = "dashboard"
	ReportISOCompliance   ReportType = "iso_compliance"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportSLA, ReportIncidents, ReportAudits, ReportNonConformities, ReportRisks,
		ReportAssets, ReportProblems, ReportDashboard, ReportISOCompliance:
		return true
	}
	return false
}

type Report struct {
	ID          string       `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Type        ReportType   `json:"type" db:"type"`
	Format      ReportFormat `json:"format" db:"format"`
	DateFrom    time.Time    `json:"date_from" db:"date_from"`
	DateTo      time.Time    `json:"date_to" db:"date_to"`
	Description string       `json:"description" db:"description"`
	Status      ReportStatus `json:"status" db:"status"`
	GeneratedAt *time.Time   `json:"generated_at,omitempty" db:"generated_at"`
	FileURL     *string      `json:"file_url,omitempty" db:"file_url"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

// ReportTask is the input of the report generation workflow.
type ReportTask struct {
	ReportID string        `json:"report_id"`
	Delay    time.Duration `json:"delay"`
}
