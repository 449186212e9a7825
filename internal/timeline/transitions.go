package timeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// resolveLimit bounds concurrent reverse-geocode lookups per day.
const resolveLimit = 4

// NameResolver resolves a coordinate pair to a human-readable place name.
// An empty name (or an error) leaves the transition unnamed.
type NameResolver interface {
	Resolve(ctx context.Context, lat, lon float64) (string, error)
}

// Detector walks a day's intervals and emits one transition per adjacent
// pair whose duty status differs, resolving location names through a
// NameResolver.
type Detector struct {
	resolver NameResolver
}

// NewDetector creates a transition detector. resolver may be nil, in
// which case transitions keep empty location names.
func NewDetector(resolver NameResolver) *Detector {
	return &Detector{resolver: resolver}
}

// Detect returns the day's transitions in input order. Name resolution
// runs concurrently but a lookup failure only leaves that one transition
// unnamed; it never aborts the pass.
func (d *Detector) Detect(ctx context.Context, intervals []models.DutyInterval) []models.Transition {
	var transitions []models.Transition

	for i := 0; i+1 < len(intervals); i++ {
		current := &intervals[i]
		next := &intervals[i+1]
		if current.Status == next.Status {
			continue
		}

		loc := models.Location{}
		if current.Location != nil {
			loc = *current.Location
		}

		transitions = append(transitions, models.Transition{
			From:     current.Status,
			To:       next.Status,
			Time:     next.StartTime,
			EndTime:  next.EndTime,
			Location: loc,
			Activity: next.Note,
		})
	}

	d.resolveNames(ctx, transitions)
	return transitions
}

// resolveNames fills in location names for transitions with usable
// coordinates. Results are written by index so output order is never
// affected by lookup completion order.
func (d *Detector) resolveNames(ctx context.Context, transitions []models.Transition) {
	if d.resolver == nil {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveLimit)

	for i := range transitions {
		loc := &transitions[i].Location
		if !loc.Valid() {
			continue
		}
		g.Go(func() error {
			name, err := d.resolver.Resolve(ctx, loc.Lat, loc.Lon)
			if err != nil || name == "" {
				// Lookup failures are isolated; any name the log
				// already carries stays.
				return nil
			}
			loc.Name = name
			return nil
		})
	}

	g.Wait()
}
