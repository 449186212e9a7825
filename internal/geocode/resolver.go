package geocode

import (
	"context"
	"log"

	"github.com/hauliq/eldview-backend-go/internal/metrics"
)

// ReverseGeocoder is the external lookup behind a Resolver.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*Place, error)
}

// Resolver answers coordinate→name queries through a session cache.
// Lookup failures resolve to an empty name and are sticky for the
// session; the resolver itself never returns them as errors.
type Resolver struct {
	geocoder ReverseGeocoder
	cache    *Cache
	metrics  *metrics.Collector
}

// NewResolver creates a resolver over the given session cache.
// metrics may be nil.
func NewResolver(geocoder ReverseGeocoder, cache *Cache, m *metrics.Collector) *Resolver {
	return &Resolver{geocoder: geocoder, cache: cache, metrics: m}
}

// Cache exposes the session cache, for lifecycle management.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns the display name for a coordinate pair, consulting the
// session cache first. A failed external lookup logs, caches an empty
// name for the session, and returns "" without error.
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64) (string, error) {
	if name, ok := r.cache.Get(lat, lon); ok {
		if r.metrics != nil {
			r.metrics.GeocodeCacheHits.Inc()
		}
		return name, nil
	}
	if r.metrics != nil {
		r.metrics.GeocodeCacheMisses.Inc()
	}

	place, err := r.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		log.Printf("[geocode] lookup failed for (%.6f,%.6f): %v", lat, lon, err)
		if r.metrics != nil {
			r.metrics.GeocodeFailures.Inc()
		}
		r.cache.Put(lat, lon, "")
		return "", nil
	}

	name := place.BestName()
	r.cache.Put(lat, lon, name)
	return name, nil
}
