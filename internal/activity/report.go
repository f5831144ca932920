package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.temporal.io/sdk/temporal"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/report"
)

// Report contains the activities of the report generation workflow.
type Report struct {
	services *core.Services
	store    report.Store
	logger   zerolog.Logger
	now      func() time.Time
}

// NewReport creates a Report activity struct. services supplies both the
// report rows and the collection data a report covers.
func NewReport(services *core.Services, store report.Store, logger zerolog.Logger) *Report {
	return &Report{
		services: services,
		store:    store,
		logger:   logger.With().Str("component", "report-activity").Logger(),
		now:      time.Now,
	}
}

// CompleteReportParams holds the parameters for CompleteReport.
type CompleteReportParams struct {
	ReportID string `json:"report_id"`
	FileURL  string `json:"file_url"`
}

// GetReport loads a report. A missing report is not retried.
func (a *Report) GetReport(ctx context.Context, id string) (*model.Report, error) {
	r, err := a.services.Report.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, temporal.NewNonRetryableApplicationError("report not found", "REPORT_NOT_FOUND", err)
	}
	return r, err
}

// GenerateReportFile renders the report content in its format, publishes
// the file and returns its URL.
func (a *Report) GenerateReportFile(ctx context.Context, r model.Report) (string, error) {
	doc := report.New(r, a.now())
	if err := a.fill(ctx, &doc, r); err != nil {
		return "", err
	}

	body, contentType, err := report.Render(doc, r.Format)
	if err != nil {
		return "", temporal.NewNonRetryableApplicationError("render report", "RENDER_ERROR", err)
	}

	key := report.FileName(r)
	url, err := a.store.Put(ctx, key, contentType, body)
	if err != nil {
		return "", err
	}

	a.logger.Info().Str("report_id", r.ID).Str("type", string(r.Type)).
		Int("rows", len(doc.Table.Rows)).Int("bytes", len(body)).Msg("report file generated")
	return url, nil
}

// CompleteReport records the file URL. A report that is no longer in
// progress (cancelled meanwhile) is not retried.
func (a *Report) CompleteReport(ctx context.Context, params CompleteReportParams) error {
	err := a.services.Report.Complete(ctx, params.ReportID, params.FileURL, a.now())
	if errors.Is(err, core.ErrConflict) {
		return temporal.NewNonRetryableApplicationError("report is not in progress", "REPORT_NOT_IN_PROGRESS", err)
	}
	if err != nil {
		return err
	}
	metrics.ReportFinished(string(model.ReportCompleted))
	return nil
}

// FailReport marks the report failed.
func (a *Report) FailReport(ctx context.Context, id string) error {
	if err := a.services.Report.Fail(ctx, id); err != nil {
		return err
	}
	metrics.ReportFinished(string(model.ReportFailed))
	return nil
}

// fill loads the data the report type covers. Collection reports include
// the rows created within [DateFrom, DateTo].
func (a *Report) fill(ctx context.Context, doc *report.Document, r model.Report) error {
	from, to := r.DateFrom, r.DateTo
	params := request.ListParams{From: &from, To: &to}
	s := a.services

	var err error
	switch r.Type {
	case model.ReportSLA:
		var rows []model.SLA
		rows, err = listAll(ctx, s.SLA.List, params, func(v model.SLA) string { return v.ID })
		doc.Table = report.SLATable(rows)
	case model.ReportIncidents:
		var rows []model.Incident
		rows, err = listAll(ctx, s.Incident.List, params, func(v model.Incident) string { return v.ID })
		doc.Table = report.IncidentTable(rows)
	case model.ReportAudits:
		var rows []model.Audit
		rows, err = listAll(ctx, s.Audit.List, params, func(v model.Audit) string { return v.ID })
		doc.Table = report.AuditTable(rows)
	case model.ReportNonConformities:
		var rows []model.NonConformity
		rows, err = listAll(ctx, s.NonConformity.List, params, func(v model.NonConformity) string { return v.ID })
		doc.Table = report.NonConformityTable(rows)
	case model.ReportRisks:
		var rows []model.Risk
		rows, err = listAll(ctx, s.Risk.List, params, func(v model.Risk) string { return v.ID })
		doc.Table = report.RiskTable(rows)
	case model.ReportAssets:
		var rows []model.Asset
		rows, err = listAll(ctx, s.Asset.List, params, func(v model.Asset) string { return v.ID })
		doc.Table = report.AssetTable(rows)
	case model.ReportProblems:
		var rows []model.Problem
		rows, err = listAll(ctx, s.Problem.List, params, func(v model.Problem) string { return v.ID })
		doc.Table = report.ProblemTable(rows)
	case model.ReportDashboard:
		var snap *model.DashboardSnapshot
		snap, err = s.Dashboard.Snapshot(ctx)
		if err == nil {
			doc.Summary, doc.Table = report.DashboardContent(*snap)
		}
	case model.ReportISOCompliance:
		doc.Summary, doc.Table = report.ISOContent(s.ISO.All())
	default:
		return temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown report type %q", r.Type), "INVALID_REPORT_TYPE", nil)
	}
	if err != nil {
		return fmt.Errorf("load %s report data: %w", r.Type, err)
	}
	if r.Type != model.ReportDashboard && r.Type != model.ReportISOCompliance {
		doc.Summary = []report.Field{{Label: "Registros", Value: fmt.Sprint(len(doc.Table.Rows))}}
	}
	return nil
}

// listAll pages through a collection listing until it is exhausted.
func listAll[T any](ctx context.Context, list func(context.Context, request.ListParams) ([]T, bool, error),
	params request.ListParams, id func(T) string) ([]T, error) {
	params.Limit = request.MaxLimit

	var out []T
	for {
		page, more, err := list(ctx, params)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if !more || len(page) == 0 {
			return out, nil
		}
		params.Cursor = id(page[len(page)-1])
	}
}

// FailStaleReports fails reports stuck in progress for longer than maxAge,
// e.g. when the API stored a report but could not reach Temporal.
func (a *Report) FailStaleReports(ctx context.Context, maxAge time.Duration) (int64, error) {
	n, err := a.services.Report.FailStale(ctx, a.now().Add(-maxAge))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		a.logger.Warn().Int64("count", n).Dur("max_age", maxAge).Msg("failed stale reports")
	}
	return n, nil
}
