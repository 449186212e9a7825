package route

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/hauliq/eldview-backend-go/internal/metrics"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/polyline"
)

// fetchLimit bounds concurrent route-geometry requests per day.
const fetchLimit = 4

// GeometryFetcher returns the encoded polyline for a driving route
// between two points.
type GeometryFetcher interface {
	Route(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (string, error)
}

// Builder turns movement legs into drawable route segments.
type Builder struct {
	fetcher GeometryFetcher
	metrics *metrics.Collector
}

// NewBuilder creates a route segment builder. metrics may be nil.
func NewBuilder(fetcher GeometryFetcher, m *metrics.Collector) *Builder {
	return &Builder{fetcher: fetcher, metrics: m}
}

// Build fetches and decodes geometry for each leg, fanning out across
// legs. Output order matches input order. A failed fetch or a malformed
// geometry drops only that leg: the viewer renders the rest of the day
// with a gap rather than nothing.
func (b *Builder) Build(ctx context.Context, legs []models.MovementLeg) []models.RouteSegment {
	results := make([]*models.RouteSegment, len(legs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)

	for i := range legs {
		i := i
		leg := &legs[i]
		g.Go(func() error {
			segment, err := b.buildOne(ctx, leg)
			if err != nil {
				log.Printf("[route] dropping leg (%.4f,%.4f)->(%.4f,%.4f): %v",
					leg.From.Location.Lat, leg.From.Location.Lon,
					leg.To.Location.Lat, leg.To.Location.Lon, err)
				if b.metrics != nil {
					b.metrics.RouteFetchErrors.Inc()
				}
				return nil
			}
			results[i] = segment
			return nil
		})
	}
	g.Wait()

	segments := make([]models.RouteSegment, 0, len(legs))
	for _, segment := range results {
		if segment != nil {
			segments = append(segments, *segment)
		}
	}
	return segments
}

func (b *Builder) buildOne(ctx context.Context, leg *models.MovementLeg) (*models.RouteSegment, error) {
	if b.metrics != nil {
		b.metrics.RouteFetches.Inc()
	}

	encoded, err := b.fetcher.Route(ctx,
		leg.From.Location.Lat, leg.From.Location.Lon,
		leg.To.Location.Lat, leg.To.Location.Lon,
	)
	if err != nil {
		return nil, err
	}

	points, err := polyline.Decode(encoded)
	if err != nil {
		return nil, err
	}

	segment := &models.RouteSegment{
		Points:    make([]models.LatLon, len(points)),
		Color:     leg.Style.Color,
		Weight:    leg.Style.Weight,
		Opacity:   leg.Style.Opacity,
		DashArray: leg.Style.DashArray,
	}
	for i, p := range points {
		segment.Points[i] = models.LatLon(p)
	}

	return segment, nil
}
