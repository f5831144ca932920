package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/serviceerror"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
)

const reportColumns = `id, name, type, format, date_from, date_to, description, status,
	generated_at, file_url, created_at`

// ReportService stores report requests and drives their generation
// workflow. A report is created in_progress; the workflow later completes or
// fails it.
type ReportService struct {
	db        DB
	tc        temporalclient.Client
	taskQueue string
	delay     time.Duration
}

func NewReportService(db DB, tc temporalclient.Client, taskQueue string, delay time.Duration) *ReportService {
	return &ReportService{db: db, tc: tc, taskQueue: taskQueue, delay: delay}
}

// ReportWorkflowID is the Temporal workflow ID of a report's generation.
func ReportWorkflowID(reportID string) string {
	return "report-" + reportID
}

func scanReport(row scanner) (model.Report, error) {
	var r model.Report
	err := row.Scan(&r.ID, &r.Name, &r.Type, &r.Format, &r.DateFrom, &r.DateTo, &r.Description,
		&r.Status, &r.GeneratedAt, &r.FileURL, &r.CreatedAt)
	return r, err
}

// Create stores the report and starts its generation workflow. If the
// workflow cannot be started the row is removed again, so a failed create
// leaves the collection unchanged.
func (s *ReportService) Create(ctx context.Context, r *model.Report) error {
	now := time.Now()
	r.ID = platform.NewReportID(now)
	r.Status = model.ReportInProgress
	r.GeneratedAt = nil
	r.FileURL = nil
	r.CreatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO reports (id, name, type, format, date_from, date_to, description, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.Name, r.Type, r.Format, r.DateFrom, r.DateTo, r.Description, r.Status, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	_, err = s.tc.ExecuteWorkflow(ctx, temporalclient.StartWorkflowOptions{
		ID:        ReportWorkflowID(r.ID),
		TaskQueue: s.taskQueue,
	}, "GenerateReportWorkflow", model.ReportTask{ReportID: r.ID, Delay: s.delay})
	if err != nil {
		if _, derr := s.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, r.ID); derr != nil {
			return fmt.Errorf("start GenerateReportWorkflow: %w (remove report %s: %v)", err, r.ID, derr)
		}
		return fmt.Errorf("start GenerateReportWorkflow: %w", err)
	}
	return nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*model.Report, error) {
	r, err := scanReport(s.db.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "report", id)
	}
	return &r, nil
}

// List returns reports newest first, filtered by type. Search matches the
// name.
func (s *ReportService) List(ctx context.Context, params request.ListParams) ([]model.Report, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("reports")
	q.equal("type", params.Type)
	q.applyCommon(params, "name")
	sql, args := q.build(reportColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list reports: %w", err)
	}
	return collect(rows, limit, "report", scanReport)
}

// Cancel fails an in-progress report and cancels its workflow. Reports that
// already finished return ErrConflict.
func (s *ReportService) Cancel(ctx context.Context, id string) (*model.Report, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.ReportInProgress {
		return nil, fmt.Errorf("report %s is %s: %w", id, r.Status, ErrConflict)
	}

	if err := s.Fail(ctx, id); err != nil {
		return nil, err
	}
	r.Status = model.ReportFailed

	err = s.tc.CancelWorkflow(ctx, ReportWorkflowID(id), "")
	var nf *serviceerror.NotFound
	if err != nil && !errors.As(err, &nf) {
		return r, fmt.Errorf("cancel GenerateReportWorkflow %s: %w", id, err)
	}
	return r, nil
}

// Complete records the generated file. Only in-progress reports can
// complete; a cancelled report returns ErrConflict.
func (s *ReportService) Complete(ctx context.Context, id, fileURL string, at time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE reports SET status = $2, generated_at = $3, file_url = $4
		 WHERE id = $1 AND status = $5`,
		id, model.ReportCompleted, at, fileURL, model.ReportInProgress,
	)
	if err != nil {
		return fmt.Errorf("complete report %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete report %s: %w", id, ErrConflict)
	}
	return nil
}

// Fail marks an in-progress report failed. Calling it on a finished report
// is a no-op.
func (s *ReportService) Fail(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE reports SET status = $2 WHERE id = $1 AND status = $3`,
		id, model.ReportFailed, model.ReportInProgress,
	)
	if err != nil {
		return fmt.Errorf("fail report %s: %w", id, err)
	}
	return nil
}

// FailStale fails reports still in progress that were created before
// cutoff. It returns how many were failed.
func (s *ReportService) FailStale(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE reports SET status = $1 WHERE status = $2 AND created_at < $3`,
		model.ReportFailed, model.ReportInProgress, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("fail stale reports: %w", err)
	}
	return tag.RowsAffected(), nil
}
