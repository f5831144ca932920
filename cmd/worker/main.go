package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"github.com/corpac/coba/internal/activity"
	"github.com/corpac/coba/internal/config"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/db"
	"github.com/corpac/coba/internal/logging"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/report"
	"github.com/corpac/coba/internal/workflow"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "worker"
	}

	if err := cfg.Validate("worker"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.ServiceName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	metrics.RegisterPgxPoolMetrics(prometheus.DefaultRegisterer, pool)

	tc, err := temporalclient.Dial(temporalclient.Options{
		HostPort: cfg.TemporalAddress,
		Logger:   logging.NewTemporalLogger(logger),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to temporal")
	}
	defer tc.Close()

	services, err := core.NewServices(pool, tc, core.Options{
		TaskQueue:            cfg.TemporalTaskQueue,
		ReportDelay:          cfg.ReportDelay,
		CustomerSatisfaction: cfg.CustomerSatisfaction,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build services")
	}

	store := report.NewStore(cfg.ReportStorage, cfg.ReportPublicURL)
	if !cfg.ReportStorage.Enabled() {
		logger.Warn().Str("publicURL", cfg.ReportPublicURL).Msg("report storage not configured, files are not uploaded")
	}

	w := worker.New(tc, cfg.TemporalTaskQueue, worker.Options{
		Interceptors: []interceptor.WorkerInterceptor{&workflow.ActivityErrorTyping{}},
	})

	w.RegisterActivity(activity.NewReport(services, store, logger))

	w.RegisterWorkflow(workflow.GenerateReportWorkflow)
	w.RegisterWorkflow(workflow.SweepStaleReportsWorkflow)

	if cfg.MetricsListenAddr != "" {
		metricsSrv := metrics.NewServer(cfg.MetricsListenAddr, pool.Ping, func(ctx context.Context) error {
			_, err := tc.CheckHealth(ctx, &temporalclient.CheckHealthRequest{})
			return err
		})
		go func() {
			logger.Info().Str("addr", cfg.MetricsListenAddr).Msg("starting metrics server")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	go func() {
		logger.Info().Str("taskQueue", cfg.TemporalTaskQueue).Msg("starting temporal worker")
		if err := w.Run(worker.InterruptCh()); err != nil {
			logger.Fatal().Err(err).Msg("worker failed")
		}
	}()

	registerCronSchedules(ctx, tc, cfg, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down worker")
	cancel()
}

type cronSchedule struct {
	id       string
	cron     string
	workflow any
	args     []any
}

// registerCronSchedules creates the recurring workflows. Existing schedules
// are left alone so redeploys do not fail.
func registerCronSchedules(ctx context.Context, tc temporalclient.Client, cfg *config.Config, logger zerolog.Logger) {
	schedules := []cronSchedule{
		{
			id:       "report-stale-sweep",
			cron:     "*/5 * * * *",
			workflow: workflow.SweepStaleReportsWorkflow,
			args:     []any{cfg.ReportStaleAfter},
		},
	}

	scheduleClient := tc.ScheduleClient()

	for _, s := range schedules {
		_, err := scheduleClient.Create(ctx, temporalclient.ScheduleOptions{
			ID: s.id,
			Spec: temporalclient.ScheduleSpec{
				CronExpressions: []string{s.cron},
			},
			Action: &temporalclient.ScheduleWorkflowAction{
				ID:        s.id,
				Workflow:  s.workflow,
				Args:      s.args,
				TaskQueue: cfg.TemporalTaskQueue,
			},
		})
		switch {
		case errors.Is(err, temporal.ErrScheduleAlreadyRunning):
			logger.Info().Str("id", s.id).Msg("cron schedule already exists, skipping")
		case err != nil:
			logger.Fatal().Err(err).Str("id", s.id).Msg("failed to create cron schedule")
		default:
			logger.Info().Str("id", s.id).Str("cron", s.cron).Msg("created cron schedule")
		}
	}
}
