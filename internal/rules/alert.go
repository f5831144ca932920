package rules

import (
	"fmt"
	"strconv"

	"github.com/corpac/coba/internal/model"
)

// MaxAlerts caps the number of alerts shown on the dashboard.
const MaxAlerts = 3

// DeriveAlerts builds the dashboard alerts: SLAs needing attention first,
// then active critical incidents, then the most recent completed audit. The
// result is truncated to MaxAlerts.
func DeriveAlerts(slas []model.SLA, incidents []model.Incident, audits []model.Audit) []model.Alert {
	alerts := []model.Alert{}

	for _, s := range slas {
		if !s.Status.NeedsAttention() {
			continue
		}
		severity, state := model.AlertWarning, "en riesgo"
		if s.Status == model.SLANonCompliant {
			severity, state = model.AlertError, "incumplido"
		}
		alerts = append(alerts, model.Alert{
			ID:          "sla-" + s.ID,
			Title:       "SLA en riesgo: " + s.Name,
			Description: fmt.Sprintf("El SLA está %s (%s%% vs %s%%)", state, formatPercent(s.CurrentValue), formatPercent(s.Target)),
			Severity:    severity,
			Source:      model.AlertSourceSLA,
			RecordID:    s.ID,
			Timestamp:   s.LastUpdated,
		})
	}

	for _, inc := range incidents {
		if inc.Priority != model.PriorityCritical || !inc.Status.Active() {
			continue
		}
		alerts = append(alerts, model.Alert{
			ID:          "incident-" + inc.ID,
			Title:       "Incidente crítico abierto",
			Description: inc.Title + " - " + inc.ID,
			Severity:    model.AlertError,
			Source:      model.AlertSourceIncident,
			RecordID:    inc.ID,
			Timestamp:   inc.CreatedAt,
		})
	}

	if a, ok := LatestCompletedAudit(audits); ok {
		alerts = append(alerts, model.Alert{
			ID:          "audit-" + a.ID,
			Title:       "Auditoría completada",
			Description: fmt.Sprintf("%s finalizada - Resultado: %s", a.Scope, a.Result),
			Severity:    model.AlertSuccess,
			Source:      model.AlertSourceAudit,
			RecordID:    a.ID,
			Timestamp:   a.CreatedAt,
		})
	}

	if len(alerts) > MaxAlerts {
		alerts = alerts[:MaxAlerts]
	}
	return alerts
}

// LatestCompletedAudit picks the most recently created completed audit,
// whatever its audit date. Equal creation times fall back to the larger id.
func LatestCompletedAudit(audits []model.Audit) (model.Audit, bool) {
	var latest model.Audit
	found := false
	for _, a := range audits {
		if a.Status != model.AuditCompleted {
			continue
		}
		if !found || a.CreatedAt.After(latest.CreatedAt) ||
			(a.CreatedAt.Equal(latest.CreatedAt) && a.ID > latest.ID) {
			latest = a
			found = true
		}
	}
	return latest, found
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
