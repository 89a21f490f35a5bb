// Package metrics defines the custom Prometheus metrics for the API.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "loop"

// ReviewsSubmittedTotal counts reviews that passed validation and were
// upserted.
var ReviewsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews accepted and stored.",
	},
)

// ReviewsRejectedTotal counts review submissions rejected by the
// validation policy.
// Label:
//   - reason: "fields", "cooldown" or "human_check"
var ReviewsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_rejected_total",
		Help:      "Total number of review submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// ReservationsCreatedTotal counts confirmed reservations.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations confirmed.",
	},
)

// SignupsTotal counts successful account creations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)
