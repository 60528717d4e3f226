// Package metrics exposes prometheus counters for key operations and HTTP
// traffic. Each Metrics value owns its registry so tests can create
// isolated instances.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "key_keeper"

// Outcome labels.
const (
	ResultSuccess = "success"
	ResultDenied  = "denied"
	ResultError   = "error"
)

// ErrDenied is reported in place of an error for operations refused by
// policy, so they are counted as denied rather than failed.
var ErrDenied = errors.New("denied")

type Metrics struct {
	registry *prometheus.Registry

	GateChecksTotal            *prometheus.CounterVec
	AuthenticationsTotal       *prometheus.CounterVec
	KeyOperationsTotal         *prometheus.CounterVec
	SecretOperationsTotal      *prometheus.CounterVec
	RevocationsPurgedTotal     prometheus.Counter
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		GateChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_checks_total",
			Help:      "Access gate policy checks by result",
		}, []string{"result"}),

		AuthenticationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authentications_total",
			Help:      "Presence authentications by result",
		}, []string{"result"}),

		KeyOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "key_operations_total",
			Help:      "Key management operations by operation and result",
		}, []string{"operation", "result"}),

		SecretOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "secret_operations_total",
			Help:      "Seal, unseal, sign and verify operations by algorithm and result",
		}, []string{"operation", "algorithm", "result"}),

		RevocationsPurgedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revocations_purged_total",
			Help:      "Expired proof revocations removed by the purge worker",
		}),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GateChecksTotal,
		m.AuthenticationsTotal,
		m.KeyOperationsTotal,
		m.SecretOperationsTotal,
		m.RevocationsPurgedTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
	)

	return m
}

// Registry returns the registry all collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) ObserveGateCheck(allowed bool, err error) {
	m.GateChecksTotal.WithLabelValues(result(allowed, err)).Inc()
}

func (m *Metrics) ObserveAuthentication(err error) {
	m.AuthenticationsTotal.WithLabelValues(result(err == nil, nil)).Inc()
}

func (m *Metrics) ObserveKeyOperation(operation string, err error) {
	m.KeyOperationsTotal.WithLabelValues(operation, result(err == nil, err)).Inc()
}

func (m *Metrics) ObserveSecretOperation(operation, algorithm string, err error) {
	m.SecretOperationsTotal.WithLabelValues(operation, algorithm, result(err == nil, err)).Inc()
}

func (m *Metrics) ObserveRevocationsPurged(n int64) {
	if n > 0 {
		m.RevocationsPurgedTotal.Add(float64(n))
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func result(ok bool, err error) string {
	switch {
	case errors.Is(err, ErrDenied):
		return ResultDenied
	case err != nil:
		return ResultError
	case ok:
		return ResultSuccess
	default:
		return ResultDenied
	}
}
