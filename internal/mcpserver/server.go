// Package mcpserver serves the dashboard's agent tools over MCP streamable
// HTTP.
package mcpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/client"
)

const instructions = "COBA IT service monitoring: dashboard KPIs and alerts, SLAs, incidents and service requests, " +
	"audits, non-conformities, risks, assets, problems, reports and ISO 20000 / ISO 9001 compliance."

// Server is the MCP server that answers tool calls through the REST API.
type Server struct {
	router chi.Router
	logger zerolog.Logger
}

func New(api *client.Client, version string, logger zerolog.Logger) *Server {
	tools := NewTools(api, logger).All()

	mcpSrv := server.NewMCPServer("coba", version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	mcpSrv.AddTools(tools...)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv, server.WithEndpointPath("/mcp")))
	logger.Info().Int("tools", len(tools)).Msg("mounted MCP endpoint at /mcp")

	return &Server{router: router, logger: logger}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
