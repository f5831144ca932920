package model

import "time"

// ServiceStatus is the lifecycle state of a catalog service.
type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceInactive ServiceStatus = "inactive"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceActive, ServiceInactive:
		return true
	}
	return false
}

// Service is an entry in the service catalog. Assets and incidents
// reference services by ID.
type Service struct {
	ID          string        `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Status      ServiceStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
