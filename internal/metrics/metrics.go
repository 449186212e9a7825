// Package metrics exposes prometheus counters for the view pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's prometheus metrics behind a private
// registry.
type Collector struct {
	reg *prometheus.Registry

	GeocodeCacheHits   prometheus.Counter
	GeocodeCacheMisses prometheus.Counter
	GeocodeFailures    prometheus.Counter

	RouteFetches     prometheus.Counter
	RouteFetchErrors prometheus.Counter

	ViewBuilds    prometheus.Counter
	StaleDiscards prometheus.Counter
	BuildDuration prometheus.Histogram

	ActiveSessions prometheus.Gauge
}

// NewCollector creates and registers all metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		GeocodeCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_geocode_cache_hits_total",
			Help: "Reverse-geocode lookups answered from the session cache.",
		}),
		GeocodeCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_geocode_cache_misses_total",
			Help: "Reverse-geocode lookups that went to the external service.",
		}),
		GeocodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_geocode_failures_total",
			Help: "External reverse-geocode calls that failed.",
		}),
		RouteFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_route_fetches_total",
			Help: "Route geometry requests issued to the routing service.",
		}),
		RouteFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_route_fetch_errors_total",
			Help: "Route geometry requests that failed and were dropped.",
		}),
		ViewBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_view_builds_total",
			Help: "Per-day timeline/route view computations.",
		}),
		StaleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldview_view_stale_discards_total",
			Help: "View computations discarded because the day selection moved on.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eldview_view_build_seconds",
			Help:    "Wall time of per-day view computations.",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eldview_active_sessions",
			Help: "Viewing sessions with a live geocode cache.",
		}),
	}

	reg.MustRegister(
		c.GeocodeCacheHits, c.GeocodeCacheMisses, c.GeocodeFailures,
		c.RouteFetches, c.RouteFetchErrors,
		c.ViewBuilds, c.StaleDiscards, c.BuildDuration,
		c.ActiveSessions,
	)

	return c
}

// Handler returns the /metrics HTTP handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
