package workflow

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/corpac/coba/internal/activity"
	"github.com/corpac/coba/internal/model"
)

func reportActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts:    3,
			InitialInterval:    1 * time.Second,
			MaximumInterval:    10 * time.Second,
			BackoffCoefficient: 2.0,
		},
	}
}

// GenerateReportWorkflow waits the configured delay, renders and publishes
// the report file, then completes the report. Any failure, including
// cancellation, leaves the report failed.
func GenerateReportWorkflow(ctx workflow.Context, task model.ReportTask) error {
	ctx = workflow.WithActivityOptions(ctx, reportActivityOptions())
	logger := workflow.GetLogger(ctx)

	fail := func(cause error) error {
		// The workflow context may already be cancelled.
		dctx, cancel := workflow.NewDisconnectedContext(ctx)
		defer cancel()
		if err := workflow.ExecuteActivity(dctx, "FailReport", task.ReportID).Get(dctx, nil); err != nil {
			logger.Error("failed to mark report failed", "report_id", task.ReportID, "error", err)
		}
		return cause
	}

	if task.Delay > 0 {
		if err := workflow.Sleep(ctx, task.Delay); err != nil {
			return fail(err)
		}
	}

	var r model.Report
	if err := workflow.ExecuteActivity(ctx, "GetReport", task.ReportID).Get(ctx, &r); err != nil {
		return fail(err)
	}
	if r.Status != model.ReportInProgress {
		logger.Info("report no longer in progress, skipping", "report_id", r.ID, "status", string(r.Status))
		return nil
	}

	var fileURL string
	if err := workflow.ExecuteActivity(ctx, "GenerateReportFile", r).Get(ctx, &fileURL); err != nil {
		return fail(err)
	}

	err := workflow.ExecuteActivity(ctx, "CompleteReport", activity.CompleteReportParams{
		ReportID: r.ID,
		FileURL:  fileURL,
	}).Get(ctx, nil)
	if err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == "REPORT_NOT_IN_PROGRESS" {
			// Cancelled while the file was being generated.
			logger.Info("report finished elsewhere, dropping file", "report_id", r.ID)
			return nil
		}
		return fail(err)
	}
	return nil
}

// SweepStaleReportsWorkflow runs on a schedule and fails reports that never
// got a generation workflow.
func SweepStaleReportsWorkflow(ctx workflow.Context, maxAge time.Duration) error {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
		},
	})

	var n int64
	if err := workflow.ExecuteActivity(ctx, "FailStaleReports", maxAge).Get(ctx, &n); err != nil {
		return err
	}
	if n > 0 {
		workflow.GetLogger(ctx).Warn("failed stale reports", "count", n)
	}
	return nil
}
