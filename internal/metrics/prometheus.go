// Package metrics provides the Prometheus-backed metrics collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector implements the wallet MetricsCollector interface over
// Prometheus counters, exposed on /metrics.
type PrometheusCollector struct {
	transactions *prometheus.CounterVec
	volume       *prometheus.CounterVec
	errors       *prometheus.CounterVec
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
}

// NewPrometheusCollector registers the collector's metrics with the default
// registry. Call at most once per process.
func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		transactions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_transactions_total",
			Help: "Number of ledger transactions appended, by type.",
		}, []string{"type"}),
		volume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_transaction_volume_minor_units",
			Help: "Absolute transaction volume in minor units, by type.",
		}, []string{"type"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_operation_errors_total",
			Help: "Number of failed operations, by operation and error kind.",
		}, []string{"operation", "kind"}),
		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_cache_hits_total",
			Help: "Balance cache hits, by key kind.",
		}, []string{"key"}),
		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_cache_misses_total",
			Help: "Balance cache misses, by key kind.",
		}, []string{"key"}),
	}
}

func (p *PrometheusCollector) RecordTransaction(txType string, amount int64) {
	p.transactions.WithLabelValues(txType).Inc()
	p.volume.WithLabelValues(txType).Add(float64(abs(amount)))
}

func (p *PrometheusCollector) RecordError(operation, errType string) {
	p.errors.WithLabelValues(operation, errType).Inc()
}

func (p *PrometheusCollector) RecordCacheHit(key string) {
	p.cacheHits.WithLabelValues(key).Inc()
}

func (p *PrometheusCollector) RecordCacheMiss(key string) {
	p.cacheMisses.WithLabelValues(key).Inc()
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
