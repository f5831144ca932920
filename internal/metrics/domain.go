package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coba",
			Name:      "records_created_total",
			Help:      "Records created through the API, by collection",
		},
		[]string{"collection"},
	)

	reportsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coba",
			Name:      "reports_finished_total",
			Help:      "Report generation runs by final status",
		},
		[]string{"status"},
	)

	assistantCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coba",
			Name:      "assistant_completions_total",
			Help:      "Assistant completion calls by outcome",
		},
		[]string{"outcome"},
	)

	dashboardStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "coba",
		Name:      "dashboard_streams",
		Help:      "Open dashboard websocket streams",
	})
)

// RecordCreated counts one record stored in collection.
func RecordCreated(collection string) {
	recordsCreated.WithLabelValues(collection).Inc()
}

// ReportFinished counts a report reaching a terminal status.
func ReportFinished(status string) {
	reportsFinished.WithLabelValues(status).Inc()
}

// AssistantCompletion counts one completion attempt. outcome is one of
// ok, empty or error.
func AssistantCompletion(outcome string) {
	assistantCompletions.WithLabelValues(outcome).Inc()
}

// StreamOpened tracks a dashboard stream; call the returned func on close.
func StreamOpened() func() {
	dashboardStreams.Inc()
	return dashboardStreams.Dec
}
