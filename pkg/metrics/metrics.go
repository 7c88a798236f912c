// Package metrics keeps prometheus collectors for the swipe engine and the interaction service
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swipefeed"

// Registry holds all collectors of this package
var Registry = prometheus.NewRegistry()

var (
	// Commits counts accepted swipe commits by direction
	Commits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commits_total",
		Help:      "Swipe commits accepted by the transition animator.",
	}, []string{"direction"})

	// DroppedCommits counts commits arriving while a transition was in flight
	DroppedCommits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commits_dropped_total",
		Help:      "Swipe commits dropped because a transition was in flight.",
	})

	// Cancels counts released swipes that sprang back
	Cancels = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cancels_total",
		Help:      "Released swipes that did not cross the commit threshold.",
	})

	// GuardCompletions counts transitions completed by the guard timer
	GuardCompletions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_completions_total",
		Help:      "Transitions forced to complete by the guard timer.",
	})

	// SyncAttempts counts interaction deliveries by kind and outcome
	SyncAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_attempts_total",
		Help:      "Interaction sync deliveries by kind and outcome.",
	}, []string{"kind", "outcome"})

	// Prefetches counts media prefetch requests by outcome
	Prefetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prefetches_total",
		Help:      "Media prefetch requests by outcome.",
	}, []string{"outcome"})
)

func init() {
	Registry.MustRegister(Commits, DroppedCommits, Cancels, GuardCompletions, SyncAttempts, Prefetches)
}

// Handler returns http handler exposing the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
