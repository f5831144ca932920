// Package rules holds the pure derivations behind the dashboard: SLA and
// problem status, KPI aggregation, KPI bands, alerts and ISO compliance.
// Nothing in here performs I/O.
package rules

import (
	"strings"

	"github.com/corpac/coba/internal/model"
)

// AtRiskRatio is the fraction of the target below which an SLA stops being
// at risk and becomes non-compliant.
const AtRiskRatio = 0.95

// SLAStatus derives the status of an SLA from its target and current value.
// A zero target or value means the measurement is missing and is treated as
// compliant.
func SLAStatus(target, current float64) model.SLAStatus {
	if target == 0 || current == 0 {
		return model.SLACompliant
	}
	if current >= target {
		return model.SLACompliant
	}
	if current >= target*AtRiskRatio {
		return model.SLAAtRisk
	}
	return model.SLANonCompliant
}

// ProblemInitialStatus returns investigating when a root cause is already
// known at creation time, open otherwise.
func ProblemInitialStatus(rootCause string) model.ProblemStatus {
	if strings.TrimSpace(rootCause) != "" {
		return model.ProblemInvestigating
	}
	return model.ProblemOpen
}

// AuditResult returns result, or the default for audits created without one.
func AuditResult(result string) string {
	if strings.TrimSpace(result) == "" {
		return model.DefaultAuditResult
	}
	return result
}

// SplitRecommendations turns multi-line input into an ordered list, one entry
// per non-blank line.
func SplitRecommendations(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
