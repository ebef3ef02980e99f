package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "babycash_client_http_requests_total",
			Help: "Outgoing HTTP requests by method and status class.",
		},
		[]string{"method", "status_class"},
	)

	RetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "babycash_client_http_retries_total",
			Help: "Retries performed by the HTTP client core.",
		},
	)

	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "babycash_client_token_refresh_total",
			Help: "Refresh-token rotations by result.",
		},
		[]string{"result"},
	)

	CartSyncFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "babycash_client_cart_sync_failures_total",
			Help: "Background cart synchronization calls that failed.",
		},
	)
)

// ObserveRequest records an outgoing request outcome. statusClass is "2xx",
// "4xx", "5xx" or "network".
func ObserveRequest(method, statusClass string) {
	RequestsTotal.WithLabelValues(method, statusClass).Inc()
}

// IncrementRetries increments the retry counter.
func IncrementRetries() {
	RetriesTotal.Inc()
}

// ObserveTokenRefresh records a refresh attempt outcome ("success" or "failure").
func ObserveTokenRefresh(result string) {
	TokenRefreshTotal.WithLabelValues(result).Inc()
}

// IncrementCartSyncFailures increments the background sync failure counter.
func IncrementCartSyncFailures() {
	CartSyncFailuresTotal.Inc()
}
