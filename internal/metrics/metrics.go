// Package metrics owns the Prometheus collectors for the API, the JSON-RPC
// transport, contract writes and the activity indexer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "protectedpay"

// Metrics groups every collector the service exports
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	rpcRequests        *prometheus.CounterVec
	rpcRequestDuration *prometheus.HistogramVec
	rpcErrors          *prometheus.CounterVec

	contractTxs        *prometheus.CounterVec
	contractTxDuration *prometheus.HistogramVec

	indexedEvents    *prometheus.CounterVec
	indexerLastBlock prometheus.Gauge
	indexerErrors    prometheus.Counter
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "path"}),
		rpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of JSON-RPC requests by method and HTTP status",
		}, []string{"method", "status"}),
		rpcRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "JSON-RPC request duration in seconds, including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		rpcErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "errors_total",
			Help:      "JSON-RPC requests that failed after retries",
		}, []string{"method"}),
		contractTxs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "transactions_total",
			Help:      "Contract writes by operation and outcome",
		}, []string{"operation", "outcome"}),
		contractTxDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "transaction_duration_seconds",
			Help:      "Time from submission to confirmation of contract writes",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
		}, []string{"operation"}),
		indexedEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "indexer",
			Name:      "events_total",
			Help:      "Contract events stored by the indexer",
		}, []string{"event"}),
		indexerLastBlock: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "indexer",
			Name:      "last_block",
			Help:      "Last block fully processed by the indexer",
		}),
		indexerErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "indexer",
			Name:      "errors_total",
			Help:      "Indexer poll iterations that failed",
		}),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records API request counts and latency by route template
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordRequestDuration implements the RPC transport's metrics collector
func (m *Metrics) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	m.rpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRequestCount implements the RPC transport's metrics collector
func (m *Metrics) RecordRequestCount(method, path string, statusCode int) {
	m.rpcRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError implements the RPC transport's metrics collector
func (m *Metrics) RecordRequestError(method, path string) {
	m.rpcErrors.WithLabelValues(method).Inc()
}

// RecordContractTx counts a contract write and, when confirmed or reverted,
// its confirmation latency
func (m *Metrics) RecordContractTx(operation, outcome string, duration time.Duration) {
	m.contractTxs.WithLabelValues(operation, outcome).Inc()
	if duration > 0 {
		m.contractTxDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// RecordIndexedEvent counts an event stored by the indexer
func (m *Metrics) RecordIndexedEvent(name string) {
	m.indexedEvents.WithLabelValues(name).Inc()
}

// SetIndexerBlock records indexer progress
func (m *Metrics) SetIndexerBlock(block uint64) {
	m.indexerLastBlock.Set(float64(block))
}

// RecordIndexerError counts a failed poll
func (m *Metrics) RecordIndexerError() {
	m.indexerErrors.Inc()
}
