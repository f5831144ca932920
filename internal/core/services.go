package core

import (
	"time"

	temporalclient "go.temporal.io/sdk/client"
)

// Options carries the non-database settings the services need.
type Options struct {
	TaskQueue            string
	ReportDelay          time.Duration
	CustomerSatisfaction int
}

type Services struct {
	Catalog       *CatalogService
	SLA           *SLAService
	Incident      *IncidentService
	Audit         *AuditService
	NonConformity *NonConformityService
	Risk          *RiskService
	Asset         *AssetService
	Problem       *ProblemService
	Report        *ReportService
	Dashboard     *DashboardService
	Settings      *SettingsService
	ISO           *ISOService
}

func NewServices(db DB, tc temporalclient.Client, opts Options) (*Services, error) {
	iso, err := NewISOService()
	if err != nil {
		return nil, err
	}
	return &Services{
		Catalog:       NewCatalogService(db),
		SLA:           NewSLAService(db),
		Incident:      NewIncidentService(db),
		Audit:         NewAuditService(db),
		NonConformity: NewNonConformityService(db),
		Risk:          NewRiskService(db),
		Asset:         NewAssetService(db),
		Problem:       NewProblemService(db),
		Report:        NewReportService(db, tc, opts.TaskQueue, opts.ReportDelay),
		Dashboard:     NewDashboardService(db, opts.CustomerSatisfaction),
		Settings:      NewSettingsService(db),
		ISO:           iso,
	}, nil
}
