package model

import "time"

// IncidentType distinguishes incidents from service requests. Both live in
// the same collection.
type IncidentType string

const (
	TypeIncident IncidentType = "incident"
	TypeRequest  IncidentType = "request"
)

func (t IncidentType) Valid() bool {
	switch t {
	case TypeIncident, TypeRequest:
		return true
	}
	return false
}

// IDPrefix returns the identifier prefix for the type.
func (t IncidentType) IDPrefix() string {
	if t == TypeRequest {
		return "REQ"
	}
	return "INC"
}

// Incident statuses.
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "open"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
	IncidentClosed     IncidentStatus = "closed"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentInProgress, IncidentResolved, IncidentClosed:
		return true
	}
	return false
}

// Active reports whether the incident still counts against the dashboard.
func (s IncidentStatus) Active() bool {
	return s == IncidentOpen || s == IncidentInProgress
}

// Incident categories.
type IncidentCategory string

const (
	IncidentCategoryHardware IncidentCategory = "hardware"
	IncidentCategorySoftware IncidentCategory = "software"
	IncidentCategoryNetwork  IncidentCategory = "network"
	IncidentCategoryAccess   IncidentCategory = "access"
	IncidentCategoryOther    IncidentCategory = "other"
)

func (c IncidentCategory) Valid() bool {
	switch c {
	case IncidentCategoryHardware, IncidentCategorySoftware, IncidentCategoryNetwork,
		IncidentCategoryAccess, IncidentCategoryOther:
		return true
	}
	return false
}

type Incident struct {
	ID          string           `json:"id" db:"id"`
	Title       string           `json:"title" db:"title"`
	Description string           `json:"description" db:"description"`
	Priority    Priority         `json:"priority" db:"priority"`
	Status      IncidentStatus   `json:"status" db:"status"`
	Type        IncidentType     `json:"type" db:"type"`
	Category    IncidentCategory `json:"category" db:"category"`
	ServiceID   *string          `json:"service_id,omitempty" db:"service_id"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}
