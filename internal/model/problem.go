package model

import "time"

type ProblemStatus string

const (
	ProblemOpen          ProblemStatus = "open"
	ProblemInvestigating ProblemStatus = "investigating"
	ProblemResolved      ProblemStatus = "resolved"
)

func (s ProblemStatus) Valid() bool {
	switch s {
	case ProblemOpen, ProblemInvestigating, ProblemResolved:
		return true
	}
	return false
}

type ProblemCategory string

const (
	ProblemInfrastructure ProblemCategory = "infrastructure"
	ProblemApplication    ProblemCategory = "application"
	ProblemNetwork        ProblemCategory = "network"
	ProblemSecurity       ProblemCategory = "security"
	ProblemProcess        ProblemCategory = "process"
)

func (c ProblemCategory) Valid() bool {
	switch c {
	case ProblemInfrastructure, ProblemApplication, ProblemNetwork, ProblemSecurity, ProblemProcess:
		return true
	}
	return false
}

type Problem struct {
	ID          string          `json:"id" db:"id"`
	Description string          `json:"description" db:"description"`
	RootCause   *string         `json:"root_cause,omitempty" db:"root_cause"`
	Solution    *string         `json:"solution,omitempty" db:"solution"`
	Priority    Priority        `json:"priority" db:"priority"`
	Category    ProblemCategory `json:"category" db:"category"`
	Status      ProblemStatus   `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
