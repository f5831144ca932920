package model

import "time"

type AssetType string

const (
	AssetHardware AssetType = "hardware"
	AssetSoftware AssetType = "software"
	AssetService  AssetType = "service"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetHardware, AssetSoftware, AssetService:
		return true
	}
	return false
}

type AssetStatus string

const (
	AssetOperational    AssetStatus = "operational"
	AssetMaintenance    AssetStatus = "maintenance"
	AssetNonOperational AssetStatus = "non_operational"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetOperational, AssetMaintenance, AssetNonOperational:
		return true
	}
	return false
}

type Asset struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Type        AssetType   `json:"type" db:"type"`
	Status      AssetStatus `json:"status" db:"status"`
	ServiceID   *string     `json:"service_id,omitempty" db:"service_id"`
	Description string      `json:"description" db:"description"`
	Location    string      `json:"location" db:"location"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
