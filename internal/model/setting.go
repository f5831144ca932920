package model

import "time"

// Setting keys recognised by the settings store.
const (
	SettingCustomerSatisfaction = "customer_satisfaction"
)

type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
