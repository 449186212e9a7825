package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hauliq/eldview-backend-go/internal/metrics"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/route"
	"github.com/hauliq/eldview-backend-go/internal/timeline"
)

// viewKey identifies one day of one trip.
type viewKey struct {
	tripID int64
	date   string
}

// builtViews is the published state for a day: both views are computed
// from the same interval snapshot and swapped in together.
type builtViews struct {
	timeline *models.TimelineView
	route    *models.RouteView
}

// ViewService computes per-day timeline and route views.
//
// Each (trip, day) carries a generation counter. A build captures the
// generation when it starts; the finished result is swapped in only if
// the generation still matches, otherwise it is discarded and counted.
// Deleting a trip bumps its generations, so any in-flight build for it
// can no longer publish.
type ViewService struct {
	trips   *TripService
	fetcher route.GeometryFetcher
	axis    timeline.Axis
	metrics *metrics.Collector

	mu    sync.Mutex
	gens  map[viewKey]uint64
	views map[viewKey]*builtViews
}

// NewViewService creates a view service. metrics may be nil.
func NewViewService(trips *TripService, fetcher route.GeometryFetcher, axis timeline.Axis, m *metrics.Collector) *ViewService {
	return &ViewService{
		trips:   trips,
		fetcher: fetcher,
		axis:    axis,
		metrics: m,
		gens:    make(map[viewKey]uint64),
		views:   make(map[viewKey]*builtViews),
	}
}

// Timeline returns the duty-status timeline for one day of a trip,
// resolving transition place names through the session's resolver.
func (s *ViewService) Timeline(ctx context.Context, sess *Session, tripID int64, date string) (*models.TimelineView, error) {
	built, err := s.day(ctx, sess, tripID, date)
	if err != nil {
		return nil, err
	}
	return built.timeline, nil
}

// Route returns the reconstructed route segments for one day of a trip.
func (s *ViewService) Route(ctx context.Context, sess *Session, tripID int64, date string) (*models.RouteView, error) {
	built, err := s.day(ctx, sess, tripID, date)
	if err != nil {
		return nil, err
	}
	return built.route, nil
}

// Invalidate bumps the generation for every cached day of a trip and
// drops the published views. Call after deleting the trip.
func (s *ViewService) Invalidate(tripID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.gens {
		if key.tripID == tripID {
			s.gens[key]++
			delete(s.views, key)
		}
	}
}

func (s *ViewService) day(ctx context.Context, sess *Session, tripID int64, date string) (*builtViews, error) {
	key := viewKey{tripID: tripID, date: date}

	s.mu.Lock()
	if built, ok := s.views[key]; ok {
		s.mu.Unlock()
		// Still check ownership before serving the cached view.
		if _, err := s.trips.Get(tripID, sess.UserID); err != nil {
			return nil, err
		}
		return built, nil
	}
	s.gens[key]++
	gen := s.gens[key]
	s.mu.Unlock()

	built, err := s.build(ctx, sess, tripID, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gens[key] != gen {
		s.mu.Unlock()
		if s.metrics != nil {
			s.metrics.StaleDiscards.Inc()
		}
		// The result is stale for the published slot but still correct
		// for this request.
		return built, nil
	}
	s.views[key] = built
	s.mu.Unlock()
	return built, nil
}

// build computes both views from one snapshot of the day's intervals.
func (s *ViewService) build(ctx context.Context, sess *Session, tripID int64, date string) (*builtViews, error) {
	start := time.Now()
	intervals, err := s.trips.DayLog(tripID, sess.UserID, date)
	if err != nil {
		return nil, err
	}

	totals, err := timeline.Totals(intervals)
	if err != nil {
		return nil, fmt.Errorf("duty log for %s violates the log contract: %w", date, err)
	}

	detector := timeline.NewDetector(sess.Resolver)
	tl := &models.TimelineView{
		Date:        date,
		Placements:  s.axis.Placements(intervals),
		Transitions: detector.Detect(ctx, intervals),
		Totals:      totals,
	}

	builder := route.NewBuilder(s.fetcher, s.metrics)
	rv := &models.RouteView{
		Date:     date,
		Segments: builder.Build(ctx, route.Legs(intervals)),
	}

	if s.metrics != nil {
		s.metrics.ViewBuilds.Inc()
		s.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}
	return &builtViews{timeline: tl, route: rv}, nil
}
