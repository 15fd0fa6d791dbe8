package metrics

import (
	"time"

	"brandguard-hq/brandguard/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector manages all Prometheus metrics for the evaluation engine.
// All Record methods are no-ops when metrics are disabled, so callers
// never need to guard their own call sites.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	complianceScore    prometheus.Histogram
	safetyRiskTotal    *prometheus.CounterVec
	cacheHitsTotal     *prometheus.CounterVec
	cacheMissesTotal   *prometheus.CounterVec
	cacheEntries       prometheus.Gauge
	pluginFailures     *prometheus.CounterVec
	brandReloads       *prometheus.CounterVec
}

// NewCollector creates a metrics collector registered against the given
// Prometheus registry. If registry is nil a fresh registry is created.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "brandguard"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "engine"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "evaluations_total",
			Help:      "Total evaluations by kind and outcome.",
		}, []string{"kind", "outcome"}),

		evaluationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Evaluation latency by kind.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"kind"}),

		complianceScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "compliance_score",
			Help:      "Distribution of brand compliance scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),

		safetyRiskTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "safety_risk_total",
			Help:      "Safety evaluations by overall risk level.",
		}, []string{"risk"}),

		cacheHitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_hits_total",
			Help:      "Result cache hits by evaluation kind.",
		}, []string{"kind"}),

		cacheMissesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_misses_total",
			Help:      "Result cache misses by evaluation kind.",
		}, []string{"kind"}),

		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_entries",
			Help:      "Current number of cached evaluation results.",
		}),

		pluginFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "plugin_failures_total",
			Help:      "Plugin invocation failures by plugin ID.",
		}, []string{"plugin"}),

		brandReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "brand_reloads_total",
			Help:      "Brand directory reloads by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		c.evaluationsTotal,
		c.evaluationDuration,
		c.complianceScore,
		c.safetyRiskTotal,
		c.cacheHitsTotal,
		c.cacheMissesTotal,
		c.cacheEntries,
		c.pluginFailures,
		c.brandReloads,
	)

	return c
}

// RecordEvaluation records a completed evaluation. Kind is "safety",
// "compliance", or "combined"; outcome is "pass", "fail", or "error".
func (c *Collector) RecordEvaluation(kind, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.evaluationsTotal.WithLabelValues(kind, outcome).Inc()
	c.evaluationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordComplianceScore records a compliance score into the score
// distribution.
func (c *Collector) RecordComplianceScore(score int) {
	if !c.config.Enabled {
		return
	}
	c.complianceScore.Observe(float64(score))
}

// RecordSafetyRisk records the overall risk level of one safety
// evaluation.
func (c *Collector) RecordSafetyRisk(risk string) {
	if !c.config.Enabled {
		return
	}
	c.safetyRiskTotal.WithLabelValues(risk).Inc()
}

// RecordCacheHit records a result cache hit for an evaluation kind.
func (c *Collector) RecordCacheHit(kind string) {
	if !c.config.Enabled {
		return
	}
	c.cacheHitsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheMiss records a result cache miss for an evaluation kind.
func (c *Collector) RecordCacheMiss(kind string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMissesTotal.WithLabelValues(kind).Inc()
}

// UpdateCacheSize updates the cached-entry gauge.
func (c *Collector) UpdateCacheSize(size int) {
	if !c.config.Enabled {
		return
	}
	c.cacheEntries.Set(float64(size))
}

// RecordPluginFailure records a plugin invocation failure.
func (c *Collector) RecordPluginFailure(pluginID string) {
	if !c.config.Enabled {
		return
	}
	c.pluginFailures.WithLabelValues(pluginID).Inc()
}

// RecordBrandReload records the result of a brand directory reload,
// "success" or "failure".
func (c *Collector) RecordBrandReload(result string) {
	if !c.config.Enabled {
		return
	}
	c.brandReloads.WithLabelValues(result).Inc()
}

// Registry returns the Prometheus registry used by this collector.
// Callers can expose it over HTTP with promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
