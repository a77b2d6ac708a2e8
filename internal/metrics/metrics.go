// Package metrics exposes Prometheus counters for the writing protocol.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProjectsCreated counts writing sessions created.
	ProjectsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkprov_projects_created_total",
		Help: "Number of writing sessions created.",
	})

	// LockAcquisitions counts successful writer-lock acquisitions.
	LockAcquisitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkprov_lock_acquisitions_total",
		Help: "Number of successful writer lock acquisitions.",
	})

	// LockConflicts counts acquisitions rejected because another user
	// held the lock, including races lost at the store.
	LockConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkprov_lock_conflicts_total",
		Help: "Number of writer lock acquisitions rejected as conflicts.",
	})

	// SnippetsSubmitted counts accepted contributions.
	SnippetsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkprov_snippets_submitted_total",
		Help: "Number of contributions accepted.",
	})

	// ProjectsCompleted counts sessions that reached their snippet cap.
	ProjectsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkprov_projects_completed_total",
		Help: "Number of writing sessions completed.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
