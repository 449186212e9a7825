package route

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

func interval(status models.Status, hour int, note string, loc *models.Location) models.DutyInterval {
	start := time.Date(2025, 3, 14, hour, 0, 0, 0, time.UTC)
	return models.DutyInterval{
		Status:    status,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Note:      note,
		Location:  loc,
	}
}

func loc(lat, lon float64) *models.Location {
	return &models.Location{Lat: lat, Lon: lon}
}

func TestLegsDrivingPairs(t *testing.T) {
	intervals := []models.DutyInterval{
		interval(models.StatusDriving, 6, "", loc(41.0, -95.0)),
		interval(models.StatusOnDuty, 7, "Pickup Activity", loc(41.2, -94.5)),
		interval(models.StatusDriving, 8, "", loc(41.2, -94.5)),
		interval(models.StatusOffDuty, 12, "", loc(41.9, -92.0)),
	}

	legs := Legs(intervals)
	require.Len(t, legs, 2)

	assert.Equal(t, 41.0, legs[0].From.Location.Lat)
	assert.Equal(t, 41.2, legs[0].To.Location.Lat)
	assert.Equal(t, models.DrivingLegStyle, legs[0].Style)
	assert.Greater(t, legs[0].Miles, 0.0)

	// The ON interval is not a leg start but does terminate the first leg
	// and the following driving interval starts the second.
	assert.Equal(t, 41.2, legs[1].From.Location.Lat)
	assert.Equal(t, 41.9, legs[1].To.Location.Lat)
}

func TestLegsZeroLengthFiltered(t *testing.T) {
	// Driving followed by on-duty at the same coordinates: nothing to draw.
	intervals := []models.DutyInterval{
		interval(models.StatusDriving, 6, "", loc(41.0, -95.0)),
		interval(models.StatusOnDuty, 7, "Drop off", loc(41.0, -95.0)),
	}

	assert.Empty(t, Legs(intervals))
}

func TestLegsUnlocatedIntervalsSkipped(t *testing.T) {
	intervals := []models.DutyInterval{
		interval(models.StatusDriving, 6, "", loc(41.0, -95.0)),
		interval(models.StatusOnDuty, 7, "Required 30-minute break after 8 hours of driving", nil),
		interval(models.StatusDriving, 8, "", loc(42.0, -93.0)),
	}

	// The unlocated break drops out, so the two driving intervals pair up.
	legs := Legs(intervals)
	require.Len(t, legs, 1)
	assert.Equal(t, 41.0, legs[0].From.Location.Lat)
	assert.Equal(t, 42.0, legs[0].To.Location.Lat)
}

func TestLegsOvernightMarkerStarts(t *testing.T) {
	intervals := []models.DutyInterval{
		interval(models.StatusOffDuty, 0, "Overnight rest period (continued from previous day)", loc(40.0, -90.0)),
		interval(models.StatusDriving, 7, "", loc(40.5, -91.0)),
	}

	legs := Legs(intervals)
	require.Len(t, legs, 1)
	assert.Equal(t, models.RestLegStyle, legs[0].Style)
	assert.Equal(t, "5, 10", legs[0].Style.DashArray)
}

func TestLegsNonDrivingNotAStart(t *testing.T) {
	intervals := []models.DutyInterval{
		interval(models.StatusOffDuty, 5, "", loc(40.0, -90.0)),
		interval(models.StatusDriving, 6, "", loc(40.5, -91.0)),
	}

	// Plain off-duty (no rest marker) never starts a leg.
	assert.Empty(t, Legs(intervals))
}

func TestLegsZeroCoordinateIsUnlocated(t *testing.T) {
	intervals := []models.DutyInterval{
		interval(models.StatusDriving, 6, "", loc(0, 0)),
		interval(models.StatusDriving, 7, "", loc(41.0, -95.0)),
	}

	assert.Empty(t, Legs(intervals))
}
