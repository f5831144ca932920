package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpac/coba/internal/model"
)

func TestISOCompliance(t *testing.T) {
	reqs := []model.ISORequirement{
		{Clause: "8.2.4", Status: model.RequirementCompliant},
		{Clause: "8.3.3", Status: model.RequirementCompliant},
		{Clause: "10.1", Status: model.RequirementInProgress},
	}

	c := ISOCompliance(model.ISO20000, "ISO/IEC 20000-1", reqs)

	assert.Equal(t, 2, c.Compliant)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 0, c.NonCompliant)
	assert.Equal(t, 67, c.CompliancePercent)
	assert.Len(t, c.Requirements, 3)
}

func TestISOCompliance_Empty(t *testing.T) {
	c := ISOCompliance(model.ISO9001, "ISO 9001", nil)
	assert.Equal(t, 0, c.CompliancePercent)
}
