package model

import "time"

// KPIs is the aggregate shown at the top of the dashboard. It is computed on
// every fetch and never stored.
type KPIs struct {
	SystemAvailability   float64 `json:"system_availability"`
	ActiveIncidents      int     `json:"active_incidents"`
	SLACompliance        int     `json:"sla_compliance"`
	CustomerSatisfaction int     `json:"customer_satisfaction"`
}

// Band is the traffic-light category of a KPI value.
type Band string

const (
	BandGood     Band = "good"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

type KPIBands struct {
	SystemAvailability   Band `json:"system_availability"`
	ActiveIncidents      Band `json:"active_incidents"`
	SLACompliance        Band `json:"sla_compliance"`
	CustomerSatisfaction Band `json:"customer_satisfaction"`
}

type AlertSeverity string

const (
	AlertWarning AlertSeverity = "warning"
	AlertError   AlertSeverity = "error"
	AlertSuccess AlertSeverity = "success"
)

// AlertSource names the collection an alert was derived from.
type AlertSource string

const (
	AlertSourceSLA      AlertSource = "sla"
	AlertSourceIncident AlertSource = "incident"
	AlertSourceAudit    AlertSource = "audit"
)

type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Source      AlertSource   `json:"source"`
	RecordID    string        `json:"record_id"`
	Timestamp   time.Time     `json:"timestamp"`
}

// DashboardSnapshot bundles everything the dashboard page renders.
type DashboardSnapshot struct {
	KPIs                 KPIs      `json:"kpis"`
	Bands                KPIBands  `json:"bands"`
	Alerts               []Alert   `json:"alerts"`
	SLAsNeedingAttention int       `json:"slas_needing_attention"`
	GeneratedAt          time.Time `json:"generated_at"`
}
