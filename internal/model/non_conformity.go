package model

import "time"

type NonConformityStatus string

const (
	NonConformityOpen       NonConformityStatus = "open"
	NonConformityInProgress NonConformityStatus = "in_progress"
	NonConformityClosed     NonConformityStatus = "closed"
)

func (s NonConformityStatus) Valid() bool {
	switch s {
	case NonConformityOpen, NonConformityInProgress, NonConformityClosed:
		return true
	}
	return false
}

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// NonConformityCategory names the standard or process a deviation belongs to.
type NonConformityCategory string

const (
	NonConformityISO20000      NonConformityCategory = "iso_20000"
	NonConformityISO9001       NonConformityCategory = "iso_9001"
	NonConformitySLA           NonConformityCategory = "sla"
	NonConformityProcess       NonConformityCategory = "process"
	NonConformityDocumentation NonConformityCategory = "documentation"
)

func (c NonConformityCategory) Valid() bool {
	switch c {
	case NonConformityISO20000, NonConformityISO9001, NonConformitySLA,
		NonConformityProcess, NonConformityDocumentation:
		return true
	}
	return false
}

type NonConformity struct {
	ID               string                `json:"id" db:"id"`
	Description      string                `json:"description" db:"description"`
	Cause            string                `json:"cause" db:"cause"`
	CorrectiveAction string                `json:"corrective_action" db:"corrective_action"`
	Category         NonConformityCategory `json:"category" db:"category"`
	Severity         Severity              `json:"severity" db:"severity"`
	Status           NonConformityStatus   `json:"status" db:"status"`
	CreatedAt        time.Time             `json:"created_at" db:"created_at"`
}
