package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpac/coba/internal/model"
)

func sla(target, current float64) model.SLA {
	return model.SLA{Target: target, CurrentValue: current, Status: SLAStatus(target, current)}
}

func TestComputeKPIs_Empty(t *testing.T) {
	k := ComputeKPIs(nil, nil, DefaultCustomerSatisfaction)

	assert.Equal(t, 0, k.SLACompliance)
	assert.Equal(t, DefaultAvailability, k.SystemAvailability)
	assert.Equal(t, 0, k.ActiveIncidents)
	assert.Equal(t, 92, k.CustomerSatisfaction)
}

func TestComputeKPIs_AtRiskCountsAsNonCompliant(t *testing.T) {
	slas := []model.SLA{sla(99.9, 99.8), sla(2.0, 1.8), sla(4.0, 5.2)}

	k := ComputeKPIs(slas, nil, 92)

	// only 4.0/5.2 meets its target
	assert.Equal(t, 33, k.SLACompliance)
	assert.Equal(t, 35.6, k.SystemAvailability)
}

func TestComputeKPIs_AvailabilityRoundedToOneDecimal(t *testing.T) {
	slas := []model.SLA{sla(99, 99.94), sla(99, 99.97)}

	k := ComputeKPIs(slas, nil, 92)

	assert.Equal(t, 100, k.SLACompliance)
	assert.Equal(t, 100.0, k.SystemAvailability)
}

func TestComputeKPIs_ActiveIncidents(t *testing.T) {
	incidents := []model.Incident{
		{Status: model.IncidentOpen},
		{Status: model.IncidentInProgress},
		{Status: model.IncidentResolved},
		{Status: model.IncidentClosed},
	}

	k := ComputeKPIs(nil, incidents, 80)

	assert.Equal(t, 2, k.ActiveIncidents)
	assert.Equal(t, 80, k.CustomerSatisfaction)
}

func TestCountNeedingAttention(t *testing.T) {
	slas := []model.SLA{sla(99.9, 99.8), sla(100, 50), sla(99, 99.5)}
	assert.Equal(t, 2, CountNeedingAttention(slas))
}

func TestBands(t *testing.T) {
	tests := []struct {
		name string
		kpis model.KPIs
		want model.KPIBands
	}{
		{
			name: "all good",
			kpis: model.KPIs{SystemAvailability: 99.9, ActiveIncidents: 0, SLACompliance: 95},
			want: model.KPIBands{SystemAvailability: model.BandGood, ActiveIncidents: model.BandGood, SLACompliance: model.BandGood, CustomerSatisfaction: model.BandGood},
		},
		{
			name: "warnings",
			kpis: model.KPIs{SystemAvailability: 99.8, ActiveIncidents: 2, SLACompliance: 85},
			want: model.KPIBands{SystemAvailability: model.BandCritical, ActiveIncidents: model.BandWarning, SLACompliance: model.BandWarning, CustomerSatisfaction: model.BandGood},
		},
		{
			name: "critical",
			kpis: model.KPIs{SystemAvailability: 90, ActiveIncidents: 3, SLACompliance: 84},
			want: model.KPIBands{SystemAvailability: model.BandCritical, ActiveIncidents: model.BandCritical, SLACompliance: model.BandCritical, CustomerSatisfaction: model.BandGood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bands(tt.kpis))
		})
	}
}
