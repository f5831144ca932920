package demo

import (
	"time"

	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
)

// Snapshot derives the dashboard from the data set the same way the API
// does from the database.
func (d *Dataset) Snapshot(now time.Time, satisfaction int) *model.DashboardSnapshot {
	var active []model.Incident
	for _, inc := range d.Incidents {
		if inc.Status.Active() {
			active = append(active, inc)
		}
	}
	var audits []model.Audit
	if a, ok := rules.LatestCompletedAudit(d.Audits); ok {
		audits = append(audits, a)
	}

	kpis := rules.ComputeKPIs(d.SLAs, active, satisfaction)
	return &model.DashboardSnapshot{
		KPIs:                 kpis,
		Bands:                rules.Bands(kpis),
		Alerts:               rules.DeriveAlerts(d.SLAs, active, audits),
		SLAsNeedingAttention: rules.CountNeedingAttention(d.SLAs),
		GeneratedAt:          now,
	}
}
