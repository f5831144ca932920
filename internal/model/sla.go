package model

import "time"

// SLAStatus is derived from an SLA's target and current value and is never
// set directly.
type SLAStatus string

const (
	SLACompliant    SLAStatus = "compliant"
	SLAAtRisk       SLAStatus = "at_risk"
	SLANonCompliant SLAStatus = "non_compliant"
)

func (s SLAStatus) Valid() bool {
	switch s {
	case SLACompliant, SLAAtRisk, SLANonCompliant:
		return true
	}
	return false
}

// NeedsAttention reports whether the status should raise a dashboard alert.
func (s SLAStatus) NeedsAttention() bool {
	return s == SLAAtRisk || s == SLANonCompliant
}

type SLA struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Target       float64   `json:"target" db:"target"`
	CurrentValue float64   `json:"current_value" db:"current_value"`
	Status       SLAStatus `json:"status" db:"status"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
