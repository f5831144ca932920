package rules

import (
	"math"

	"github.com/corpac/coba/internal/model"
)

// ISOCompliance tallies requirement statuses and the compliance percentage
// round(100 * compliant / total). An empty catalog is 0%.
func ISOCompliance(standard model.ISOStandard, title string, reqs []model.ISORequirement) model.ISOCompliance {
	c := model.ISOCompliance{
		Standard:     standard,
		Title:        title,
		Requirements: reqs,
	}
	for _, r := range reqs {
		switch r.Status {
		case model.RequirementCompliant:
			c.Compliant++
		case model.RequirementInProgress:
			c.InProgress++
		case model.RequirementNonCompliant:
			c.NonCompliant++
		}
	}
	if len(reqs) > 0 {
		c.CompliancePercent = int(math.Round(100 * float64(c.Compliant) / float64(len(reqs))))
	}
	return c
}
