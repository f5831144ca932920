package rules

import (
	"math"

	"github.com/corpac/coba/internal/model"
)

const (
	// DefaultAvailability is reported when there are no SLAs to average.
	DefaultAvailability = 99.5
	// DefaultCustomerSatisfaction is the survey score shown until a real
	// survey source exists.
	DefaultCustomerSatisfaction = 92
)

// ComputeKPIs reduces the current SLA and incident collections to the
// dashboard KPIs. It is recomputed from scratch on every call.
func ComputeKPIs(slas []model.SLA, incidents []model.Incident, satisfaction int) model.KPIs {
	compliant := 0
	sum := 0.0
	for _, s := range slas {
		if s.Status == model.SLACompliant {
			compliant++
		}
		sum += s.CurrentValue
	}

	total := max(len(slas), 1)

	availability := DefaultAvailability
	if len(slas) > 0 {
		availability = math.Round(sum/float64(len(slas))*10) / 10
	}

	return model.KPIs{
		SystemAvailability:   availability,
		ActiveIncidents:      CountActiveIncidents(incidents),
		SLACompliance:        int(math.Round(100 * float64(compliant) / float64(total))),
		CustomerSatisfaction: satisfaction,
	}
}

func CountActiveIncidents(incidents []model.Incident) int {
	n := 0
	for _, inc := range incidents {
		if inc.Status.Active() {
			n++
		}
	}
	return n
}

// CountNeedingAttention counts SLAs that are at risk or non-compliant.
func CountNeedingAttention(slas []model.SLA) int {
	n := 0
	for _, s := range slas {
		if s.Status.NeedsAttention() {
			n++
		}
	}
	return n
}

// Bands classifies each KPI into a traffic-light band.
func Bands(k model.KPIs) model.KPIBands {
	b := model.KPIBands{
		SystemAvailability:   model.BandCritical,
		ActiveIncidents:      model.BandWarning,
		SLACompliance:        model.BandCritical,
		CustomerSatisfaction: model.BandGood,
	}

	if k.SystemAvailability >= 99.9 {
		b.SystemAvailability = model.BandGood
	}

	switch {
	case k.ActiveIncidents == 0:
		b.ActiveIncidents = model.BandGood
	case k.ActiveIncidents > 2:
		b.ActiveIncidents = model.BandCritical
	}

	switch {
	case k.SLACompliance >= 95:
		b.SLACompliance = model.BandGood
	case k.SLACompliance >= 85:
		b.SLACompliance = model.BandWarning
	}

	return b
}
