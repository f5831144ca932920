package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/metrics"
	"github.com/corpac/coba/internal/model"
)

type snapshotter interface {
	Snapshot(ctx context.Context) (*model.DashboardSnapshot, error)
}

type Dashboard struct {
	svc      snapshotter
	interval time.Duration
	origins  []string
}

// NewDashboard serves the KPI snapshot. Streams push a fresh snapshot every
// interval; origins lists the hosts allowed to open one.
func NewDashboard(svc *core.DashboardService, interval time.Duration, origins []string) *Dashboard {
	return &Dashboard{svc: svc, interval: interval, origins: origins}
}

// Get godoc
//
//	@Summary		Dashboard snapshot
//	@Description	Returns the KPIs with their bands, up to three alerts, and the number of SLAs needing attention.
//	@Tags			Dashboard
//	@Success		200	{object}	model.DashboardSnapshot
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/dashboard [get]
func (h *Dashboard) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		response.WriteServiceError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, snap)
}

// Stream godoc
//
//	@Summary		Live dashboard
//	@Description	Upgrades to a websocket and sends a snapshot as a JSON text message immediately and then on every refresh interval. Messages from the client are ignored.
//	@Tags			Dashboard
//	@Success		101
//	@Router			/dashboard/stream [get]
func (h *Dashboard) Stream(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originHosts(h.origins),
	})
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer ws.CloseNow()
	defer metrics.StreamOpened()()

	// CloseRead discards client frames and cancels ctx once the peer goes away.
	ctx := ws.CloseRead(r.Context())

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		snap, err := h.svc.Snapshot(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("dashboard snapshot failed")
			ws.Close(websocket.StatusInternalError, "snapshot failed")
			return
		}

		writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = wsjson.Write(writeCtx, ws, snap)
		cancel()
		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// originHosts turns configured origins such as http://localhost:5173 into
// the host patterns websocket.Accept matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, o)
	}
	return hosts
}
