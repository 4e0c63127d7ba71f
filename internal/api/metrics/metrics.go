// Package metrics defines the custom Prometheus metrics of the portal client.
// Metrics register with the default registry on import through promauto and
// are served by the gateway on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobportal"

// ── Remote API metrics ────────────────────────────────────────────────────────

// RemoteRequestsTotal counts calls to the remote Job Portal API.
// Labels:
//   - route: the path template (e.g. "/jobs/{id}")
//   - method: HTTP method
//   - code: HTTP status code, or "error" when no response was received
var RemoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_requests_total",
		Help:      "Total number of requests sent to the remote API.",
	},
	[]string{"route", "method", "code"},
)

// RemoteRequestDuration measures round-trip time of remote API calls.
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of remote API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// IdentityCheckFailuresTotal counts stored tokens the remote API refused.
// Label:
//   - reason: "expired", "unauthenticated" or "error"
var IdentityCheckFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_check_failures_total",
		Help:      "Total number of failed identity checks, by reason.",
	},
	[]string{"reason"},
)

// SessionTransitionsTotal counts session state changes.
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions.",
	},
	[]string{"from", "to"},
)

// TokenStoreErrorsTotal counts token store failures.
// Label:
//   - op: "get", "set" or "delete"
var TokenStoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_store_errors_total",
		Help:      "Total number of token store failures, by operation.",
	},
	[]string{"op"},
)

// SessionAuthenticated is 1 while a user is logged in.
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "1 while the session holds an authenticated user, 0 otherwise.",
	},
)
