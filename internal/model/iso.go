package model

// ISOStandard identifies a tracked management-system standard.
type ISOStandard string

const (
	ISO20000 ISOStandard = "iso20000"
	ISO9001  ISOStandard = "iso9001"
)

func (s ISOStandard) Valid() bool {
	switch s {
	case ISO20000, ISO9001:
		return true
	}
	return false
}

type RequirementStatus string

const (
	RequirementCompliant    RequirementStatus = "compliant"
	RequirementInProgress   RequirementStatus = "in_progress"
	RequirementNonCompliant RequirementStatus = "non_compliant"
)

func (s RequirementStatus) Valid() bool {
	switch s {
	case RequirementCompliant, RequirementInProgress, RequirementNonCompliant:
		return true
	}
	return false
}

// ISORequirement maps one clause of a standard to the module that provides
// the evidence for it.
type ISORequirement struct {
	Clause string            `json:"clause" yaml:"clause"`
	Title  string            `json:"title" yaml:"title"`
	Status RequirementStatus `json:"status" yaml:"status"`
	Source string            `json:"source" yaml:"source"`
	Link   string            `json:"link" yaml:"link"`
}

type ISOCompliance struct {
	Standard          ISOStandard      `json:"standard"`
	Title             string           `json:"title"`
	Requirements      []ISORequirement `json:"requirements"`
	Compliant         int              `json:"compliant"`
	InProgress        int              `json:"in_progress"`
	NonCompliant      int              `json:"non_compliant"`
	CompliancePercent int              `json:"compliance_percent"`
}
