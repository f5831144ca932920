package demo

import (
	"strings"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
	"github.com/corpac/coba/internal/rules"
	"github.com/corpac/coba/internal/validation"
)

// The builders turn a validated creation form into the record an in-memory
// collection stores, applying the same derivations as the API.

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func NewService(f request.CreateService, now time.Time) (model.Service, error) {
	status := model.ServiceStatus(f.Status)
	if status == "" {
		status = model.ServiceActive
	}
	return model.Service{ID: platform.NewID(), Name: f.Name, Description: f.Description, Status: status, CreatedAt: now}, nil
}

func NewSLA(f request.CreateSLA, now time.Time) (model.SLA, error) {
	var target, current float64
	if f.Target != nil {
		target = *f.Target
	}
	if f.CurrentValue != nil {
		current = *f.CurrentValue
	}
	return model.SLA{
		ID:           platform.NewID(),
		Name:         f.Name,
		Description:  f.Description,
		Target:       target,
		CurrentValue: current,
		Status:       rules.SLAStatus(target, current),
		LastUpdated:  now,
		CreatedAt:    now,
	}, nil
}

func NewIncident(f request.CreateIncident, now time.Time) (model.Incident, error) {
	typ := model.IncidentType(f.Type)
	if typ == "" {
		typ = model.TypeIncident
	}
	return model.Incident{
		ID:          platform.NewTicketID(typ.IDPrefix(), now),
		Title:       f.Title,
		Description: f.Description,
		Priority:    model.Priority(f.Priority),
		Status:      model.IncidentOpen,
		Type:        typ,
		Category:    model.IncidentCategory(f.Category),
		ServiceID:   f.ServiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func NewAudit(f request.CreateAudit, now time.Time) (model.Audit, error) {
	date, err := validation.ParseDate(f.Date)
	if err != nil {
		return model.Audit{}, err
	}
	status := model.AuditStatus(f.Status)
	if status == "" {
		status = model.AuditPlanned
	}
	return model.Audit{
		ID:              platform.NewID(),
		Date:            date,
		Scope:           f.Scope,
		Result:          rules.AuditResult(f.Result),
		Status:          status,
		Recommendations: rules.SplitRecommendations(f.Recommendations),
		CreatedAt:       now,
	}, nil
}

func NewNonConformity(f request.CreateNonConformity, now time.Time) (model.NonConformity, error) {
	return model.NonConformity{
		ID:               platform.NewID(),
		Description:      f.Description,
		Cause:            f.Cause,
		CorrectiveAction: f.CorrectiveAction,
		Category:         model.NonConformityCategory(f.Category),
		Severity:         model.Severity(f.Severity),
		Status:           model.NonConformityOpen,
		CreatedAt:        now,
	}, nil
}

func NewRisk(f request.CreateRisk, now time.Time) (model.Risk, error) {
	return model.Risk{
		ID:          platform.NewID(),
		Description: f.Description,
		Priority:    model.Priority(f.Priority),
		Mitigation:  f.Mitigation,
		Category:    model.RiskCategory(f.Category),
		Status:      model.RiskOpen,
		CreatedAt:   now,
	}, nil
}

func NewAsset(f request.CreateAsset, now time.Time) (model.Asset, error) {
	status := model.AssetStatus(f.Status)
	if status == "" {
		status = model.AssetOperational
	}
	return model.Asset{
		ID:          platform.NewID(),
		Name:        f.Name,
		Type:        model.AssetType(f.Type),
		Status:      status,
		ServiceID:   f.ServiceID,
		Description: f.Description,
		Location:    f.Location,
		CreatedAt:   now,
	}, nil
}

func NewProblem(f request.CreateProblem, now time.Time) (model.Problem, error) {
	return model.Problem{
		ID:          platform.NewID(),
		Description: f.Description,
		RootCause:   optional(f.RootCause),
		Solution:    optional(f.Solution),
		Priority:    model.Priority(f.Priority),
		Category:    model.ProblemCategory(f.Category),
		Status:      rules.ProblemInitialStatus(f.RootCause),
		CreatedAt:   now,
	}, nil
}

// NewReport records the request only; demo data has no worker, so the
// report stays in progress.
func NewReport(f request.CreateReport, now time.Time) (model.Report, error) {
	from, err := validation.ParseDate(f.DateFrom)
	if err != nil {
		return model.Report{}, err
	}
	to, err := validation.ParseDate(f.DateTo)
	if err != nil {
		return model.Report{}, err
	}
	return model.Report{
		ID:          platform.NewReportID(now),
		Name:        f.Name,
		Type:        model.ReportType(f.Type),
		Format:      model.ReportFormat(f.Format),
		DateFrom:    from,
		DateTo:      to,
		Description: f.Description,
		Status:      model.ReportInProgress,
		CreatedAt:   now,
	}, nil
}
