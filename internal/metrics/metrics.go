package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmtrace"

// Metrics holds the Prometheus collectors of the service.
// All methods are safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	blocksAppended      *prometheus.CounterVec
	verifications       *prometheus.CounterVec
	integrityFailures   prometheus.Counter
	transfers           *prometheus.CounterVec
	acceptRetries       prometheus.Counter
	reconcilerRepairs   *prometheus.CounterVec
	notificationsFailed *prometheus.CounterVec
	httpRequests        *prometheus.HistogramVec
}

// New registers all collectors with the provided registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{}

	m.blocksAppended = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_blocks_appended_total",
		Help:      "ownership blocks appended, by transfer type",
	}, []string{"transfer_type"})
	m.verifications = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_verifications_total",
		Help:      "chain verifications, by result",
	}, []string{"result"})
	m.integrityFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_integrity_failures_total",
		Help:      "writes refused because the chain failed verification",
	})
	m.transfers = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_transfers_total",
		Help:      "ownership transfer transitions, by resulting status",
	}, []string{"status"})
	m.acceptRetries = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transfer_accept_retries_total",
		Help:      "accept attempts retried after a chain write failure",
	})
	m.reconcilerRepairs = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciler_repairs_total",
		Help:      "owner projections examined by the reconciler, by outcome",
	}, []string{"outcome"})
	m.notificationsFailed = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "notification deliveries that failed, by sink",
	}, []string{"sink"})
	m.httpRequests = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "latency of HTTP requests",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"method", "route", "status"})

	return m
}

// BlockAppended records a persisted block
func (m *Metrics) BlockAppended(transferType string) {
	if m == nil {
		return
	}
	m.blocksAppended.WithLabelValues(transferType).Inc()
}

// ChainVerified records the result of a chain verification
func (m *Metrics) ChainVerified(valid bool) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.verifications.WithLabelValues(result).Inc()
}

// IntegrityFailure records a write refused because of a corrupt chain
func (m *Metrics) IntegrityFailure() {
	if m == nil {
		return
	}
	m.integrityFailures.Inc()
}

// TransferTransitioned records a transfer entering status
func (m *Metrics) TransferTransitioned(status string) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(status).Inc()
}

// AcceptRetried records a retried accept attempt
func (m *Metrics) AcceptRetried() {
	if m == nil {
		return
	}
	m.acceptRetries.Inc()
}

// ReconcilerOutcome records the outcome of a reconciler repair (repaired, skipped, corrupt, failed)
func (m *Metrics) ReconcilerOutcome(outcome string) {
	if m == nil {
		return
	}
	m.reconcilerRepairs.WithLabelValues(outcome).Inc()
}

// NotificationFailed records a failed delivery to a notification sink
func (m *Metrics) NotificationFailed(sink string) {
	if m == nil {
		return
	}
	m.notificationsFailed.WithLabelValues(sink).Inc()
}

// ObserveHTTPRequest records the latency of a served request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
