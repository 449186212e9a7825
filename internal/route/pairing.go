// Package route reconstructs drawable road geometry for a day's duty
// log: movement-leg selection, per-leg geometry fetch, and styling.
package route

import (
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/spatial"
)

// Legs selects the movement legs of a day eligible for a road-geometry
// lookup. Only location-bearing intervals participate (relative order
// preserved). A leg starts at an interval that is either driving or an
// overnight/continued-rest marker and ends at the next located interval;
// legs with identical endpoint coordinates are dropped since there is no
// geometry to fetch.
func Legs(intervals []models.DutyInterval) []models.MovementLeg {
	located := make([]models.DutyInterval, 0, len(intervals))
	for i := range intervals {
		if intervals[i].Location.Valid() {
			located = append(located, intervals[i])
		}
	}

	var legs []models.MovementLeg
	for i := 0; i+1 < len(located); i++ {
		current := &located[i]
		next := &located[i+1]

		rest := current.IsRestMarker()
		if current.Status != models.StatusDriving && !rest {
			continue
		}
		if current.Location.Lat == next.Location.Lat &&
			current.Location.Lon == next.Location.Lon {
			continue
		}

		style := models.DrivingLegStyle
		if rest {
			// Overnight reconnections are drawn dashed and faded so they
			// read as "road not driven live".
			style = models.RestLegStyle
		}

		legs = append(legs, models.MovementLeg{
			From:  *current,
			To:    *next,
			Style: style,
			Miles: spatial.MilesBetween(
				current.Location.Lat, current.Location.Lon,
				next.Location.Lat, next.Location.Lon,
			),
		})
	}

	return legs
}
