package model

import "time"

// DefaultAuditResult is stored when an audit is created without a result.
const DefaultAuditResult = "Programado"

type AuditStatus string

const (
	AuditPlanned    AuditStatus = "planned"
	AuditInProgress AuditStatus = "in_progress"
	AuditCompleted  AuditStatus = "completed"
)

func (s AuditStatus) Valid() bool {
	switch s {
	case AuditPlanned, AuditInProgress, AuditCompleted:
		return true
	}
	return false
}

type Audit struct {
	ID              string      `json:"id" db:"id"`
	Date            time.Time   `json:"date" db:"date"`
	Scope           string      `json:"scope" db:"scope"`
	Result          string      `json:"result" db:"result"`
	Status          AuditStatus `json:"status" db:"status"`
	Recommendations []string    `json:"recommendations" db:"recommendations"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}
