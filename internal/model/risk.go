package model

import "time"

type RiskStatus string

const (
	RiskOpen      RiskStatus = "open"
	RiskMitigated RiskStatus = "mitigated"
	RiskClosed    RiskStatus = "closed"
)

func (s RiskStatus) Valid() bool {
	switch s {
	case RiskOpen, RiskMitigated, RiskClosed:
		return true
	}
	return false
}

type RiskCategory string

const (
	RiskOperational RiskCategory = "operational"
	RiskTechnical   RiskCategory = "technical"
	RiskSecurity    RiskCategory = "security"
	RiskCompliance  RiskCategory = "compliance"
	RiskFinancial   RiskCategory = "financial"
)

func (c RiskCategory) Valid() bool {
	switch c {
	case RiskOperational, RiskTechnical, RiskSecurity, RiskCompliance, RiskFinancial:
		return true
	}
	return false
}

type Risk struct {
	ID          string       `json:"id" db:"id"`
	Description string       `json:"description" db:"description"`
	Priority    Priority     `json:"priority" db:"priority"`
	Mitigation  string       `json:"mitigation" db:"mitigation"`
	Category    RiskCategory `json:"category" db:"category"`
	Status      RiskStatus   `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
