package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/corpac/coba/internal/api/handler"
	mw "github.com/corpac/coba/internal/api/middleware"
	"github.com/corpac/coba/internal/assistant"
	"github.com/corpac/coba/internal/config"
	"github.com/corpac/coba/internal/core"
)

// Database is the store the API runs against; *pgxpool.Pool satisfies it.
type Database interface {
	core.DB
	Ping(ctx context.Context) error
}

type Server struct {
	router         chi.Router
	logger         zerolog.Logger
	services       *core.Services
	assistant      *assistant.Service
	db             Database
	temporalClient temporalclient.Client
	cfg            *config.Config
}

func NewServer(logger zerolog.Logger, db Database, temporalClient temporalclient.Client, asst *assistant.Service, cfg *config.Config) (*Server, error) {
	services, err := core.NewServices(db, temporalClient, core.Options{
		TaskQueue:            cfg.TemporalTaskQueue,
		ReportDelay:          cfg.ReportDelay,
		CustomerSatisfaction: cfg.CustomerSatisfaction,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:         chi.NewRouter(),
		logger:         logger,
		services:       services,
		assistant:      asst,
		db:             db,
		temporalClient: temporalClient,
		cfg:            cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes() {
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.router.Route("/api/v1", func(r chi.Router) {
		dashboard := handler.NewDashboard(s.services.Dashboard, s.cfg.DashboardStreamInterval, s.cfg.CORSOrigins)
		r.Get("/dashboard", dashboard.Get)
		r.Get("/dashboard/stream", dashboard.Stream)

		service := handler.NewService(s.services.Catalog)
		r.Get("/services", service.List)
		r.Post("/services", service.Create)
		r.Get("/services/{id}", service.Get)

		sla := handler.NewSLA(s.services.SLA)
		r.Get("/slas", sla.List)
		r.Post("/slas", sla.Create)
		r.Get("/slas/{id}", sla.Get)
		r.Patch("/slas/{id}", sla.Update)

		incident := handler.NewIncident(s.services.Incident)
		r.Get("/incidents", incident.List)
		r.Post("/incidents", incident.Create)
		r.Get("/incidents/{id}", incident.Get)
		r.Post("/requests", incident.CreateRequest)

		audit := handler.NewAudit(s.services.Audit)
		r.Get("/audits", audit.List)
		r.Post("/audits", audit.Create)
		r.Get("/audits/{id}", audit.Get)

		nc := handler.NewNonConformity(s.services.NonConformity)
		r.Get("/non-conformities", nc.List)
		r.Post("/non-conformities", nc.Create)
		r.Get("/non-conformities/{id}", nc.Get)

		risk := handler.NewRisk(s.services.Risk)
		r.Get("/risks", risk.List)
		r.Post("/risks", risk.Create)
		r.Get("/risks/{id}", risk.Get)

		asset := handler.NewAsset(s.services.Asset)
		r.Get("/assets", asset.List)
		r.Post("/assets", asset.Create)
		r.Get("/assets/{id}", asset.Get)

		problem := handler.NewProblem(s.services.Problem)
		r.Get("/problems", problem.List)
		r.Post("/problems", problem.Create)
		r.Get("/problems/{id}", problem.Get)

		report := handler.NewReport(s.services.Report)
		r.Get("/reports", report.List)
		r.Post("/reports", report.Create)
		r.Get("/reports/{id}", report.Get)
		r.Post("/reports/{id}/cancel", report.Cancel)

		iso := handler.NewISO(s.services.ISO)
		r.Get("/iso", iso.List)
		r.Get("/iso/{standard}", iso.Get)

		settings := handler.NewSettings(s.services.Settings)
		r.Get("/settings", settings.List)
		r.Put("/settings/{key}", settings.Set)

		if s.assistant != nil {
			asst := handler.NewAssistant(s.assistant)
			r.Post("/assistant/conversations", asst.Start)
			r.Get("/assistant/conversations/{id}", asst.Get)
			r.Post("/assistant/conversations/{id}/messages", asst.Send)
		}
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if _, err := s.temporalClient.CheckHealth(ctx, &temporalclient.CheckHealthRequest{}); err != nil {
		checks["temporal"] = err.Error()
		healthy = false
	} else {
		checks["temporal"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
