package request

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpac/coba/internal/validation"
)

func TestRequireID(t *testing.T) {
	id, err := RequireID("INC482913")
	require.NoError(t, err)
	assert.Equal(t, "INC482913", id)

	_, err = RequireID("")
	assert.EqualError(t, err, "missing required ID")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		fields  []string
	}{
		{
			name: "valid risk",
			body: `{"description":"Ransomware en servidores","priority":"high","mitigation":"Respaldos aislados","category":"security"}`,
		},
		{
			name:    "malformed body",
			body:    `{"description":`,
			wantErr: "invalid JSON",
		},
		{
			name:    "missing fields",
			body:    `{"priority":"low","category":"financial"}`,
			wantErr: "validation error",
			fields:  []string{"description", "mitigation"},
		},
		{
			name:    "blank description",
			body:    `{"description":"   ","priority":"low","mitigation":"Plan","category":"financial"}`,
			wantErr: "validation error",
			fields:  []string{"description"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/api/v1/risks", bytes.NewBufferString(tt.body))
			require.NoError(t, err)

			var payload CreateRisk
			err = Decode(r, &payload)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "security", payload.Category)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var fields validation.Errors
			if len(tt.fields) == 0 {
				assert.False(t, errors.As(err, &fields))
				return
			}
			require.True(t, errors.As(err, &fields))
			for _, f := range tt.fields {
				assert.Equal(t, "is required", fields[f])
			}
			assert.Len(t, fields, len(tt.fields))
		})
	}
}

func TestCreateReport_DateOrder(t *testing.T) {
	req := CreateReport{
		Name:     "SLA Q1",
		Type:     "sla",
		Format:   "PDF",
		DateFrom: "2024-03-31",
		DateTo:   "2024-01-01",
	}
	errs := validation.Struct(req)
	assert.Equal(t, "must not be before date_from", errs["date_to"])
}

func TestCreateRisk_RejectsCriticalPriority(t *testing.T) {
	req := CreateRisk{
		Description: "Pérdida de enlace",
		Priority:    "critical",
		Mitigation:  "Enlace redundante",
		Category:    "technical",
	}
	errs := validation.Struct(req)
	assert.Equal(t, "must be one of: low, medium, high", errs["priority"])
}

func TestCreateSLA_RequiresTargetAndCurrent(t *testing.T) {
	errs := validation.Struct(CreateSLA{Name: "Disponibilidad"})
	assert.Equal(t, "is required", errs["target"])
	assert.Equal(t, "is required", errs["current_value"])
}

func TestCreateSLA_Range(t *testing.T) {
	pct := func(v float64) *float64 { return &v }
	tests := []struct {
		name    string
		target  float64
		current float64
		field   string
	}{
		{"zero target", 0, 50, ""},
		{"zero current", 99.9, 0, ""},
		{"full range", 100, 100, ""},
		{"negative target", -1, 50, "target"},
		{"target over 100", 100.5, 50, "target"},
		{"current over 100", 99, 101, "current_value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Struct(CreateSLA{Name: "Disponibilidad", Target: pct(tt.target), CurrentValue: pct(tt.current)})
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestUpdateSLA_AcceptsZeroTarget(t *testing.T) {
	zero := 0.0
	assert.Empty(t, validation.Struct(UpdateSLA{Target: &zero}))
}
