package core

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
)

// DashboardService computes the dashboard snapshot. Nothing it returns is
// stored; every call recomputes from the current rows.
type DashboardService struct {
	slas         *SLAService
	incidents    *IncidentService
	audits       *AuditService
	settings     *SettingsService
	satisfaction int
}

// NewDashboardService creates a DashboardService. satisfaction is used until
// the customer_satisfaction setting is stored.
func NewDashboardService(db DB, satisfaction int) *DashboardService {
	return &DashboardService{
		slas:         NewSLAService(db),
		incidents:    NewIncidentService(db),
		audits:       NewAuditService(db),
		settings:     NewSettingsService(db),
		satisfaction: satisfaction,
	}
}

// Snapshot fetches SLAs, active incidents, the latest completed audit and
// the satisfaction score in parallel and derives KPIs, bands and alerts.
func (s *DashboardService) Snapshot(ctx context.Context) (*model.DashboardSnapshot, error) {
	var (
		slas         []model.SLA
		incidents    []model.Incident
		audit        *model.Audit
		satisfaction int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slas, err = s.slas.All(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		incidents, err = s.incidents.Active(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		audit, err = s.audits.LatestCompleted(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		satisfaction, err = s.settings.Int(gctx, model.SettingCustomerSatisfaction, s.satisfaction)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard snapshot: %w", err)
	}

	var audits []model.Audit
	if audit != nil {
		audits = append(audits, *audit)
	}

	kpis := rules.ComputeKPIs(slas, incidents, satisfaction)
	return &model.DashboardSnapshot{
		KPIs:                 kpis,
		Bands:                rules.Bands(kpis),
		Alerts:               rules.DeriveAlerts(slas, incidents, audits),
		SLAsNeedingAttention: rules.CountNeedingAttention(slas),
		GeneratedAt:          time.Now(),
	}, nil
}
