// Package timeline derives the daily log-grid model from a day's duty
// intervals: interval placements on the 24-hour axis, per-status duration
// totals, and status transitions with resolved location names.
package timeline

import (
	"time"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// Default calibration for the stock paper-log template: 00:00 falls at
// 16.66% and 24:00 at 87.26% of the sheet width. Other templates supply
// their own values through config.
const (
	DefaultAxisSpan   = 70.6
	DefaultAxisOffset = 16.66
)

// Axis maps clock times onto the horizontal percentage scale of a log
// sheet. Span and Offset are template calibration constants.
type Axis struct {
	Span   float64
	Offset float64
}

// NewAxis returns an axis with the given calibration. Zero values fall
// back to the stock template.
func NewAxis(span, offset float64) Axis {
	if span == 0 {
		span = DefaultAxisSpan
	}
	if offset == 0 {
		offset = DefaultAxisOffset
	}
	return Axis{Span: span, Offset: offset}
}

// Position maps a clock time within the day to a percentage offset.
func (a Axis) Position(t time.Time) float64 {
	return a.position(float64(t.Hour()) + float64(t.Minute())/60)
}

// PositionEnd is Position except that midnight is treated as 24:00, the
// right edge of the grid, so spans ending on the day boundary close out
// instead of wrapping to the left edge.
func (a Axis) PositionEnd(t time.Time) float64 {
	h := float64(t.Hour()) + float64(t.Minute())/60
	if h == 0 {
		h = 24
	}
	return a.position(h)
}

func (a Axis) position(hours float64) float64 {
	return hours/24*a.Span + a.Offset
}

// Placements projects a day's intervals onto the axis, in input order.
func (a Axis) Placements(intervals []models.DutyInterval) []models.TimelinePlacement {
	placements := make([]models.TimelinePlacement, 0, len(intervals))
	for i := range intervals {
		iv := &intervals[i]
		placements = append(placements, models.TimelinePlacement{
			Status:     iv.Status,
			StartPos:   a.Position(iv.StartTime),
			EndPos:     a.PositionEnd(iv.EndTime),
			Stationary: iv.IsStationary(),
		})
	}
	return placements
}
