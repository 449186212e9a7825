package models

import (
	"strings"
	"time"
)

// Location is a geocoded waypoint attached to a duty log entry.
type Location struct {
	Lat  float64 `json:"lat" db:"loc_lat"`
	Lon  float64 `json:"lon" db:"loc_lon"`
	Name string  `json:"name" db:"loc_name"`
}

// Valid reports whether the location carries usable coordinates.
// Zero lat/lon means "no location" in the log source.
func (l *Location) Valid() bool {
	return l != nil && l.Lat != 0 && l.Lon != 0
}

// DutyInterval is one logged duty-status span within a day.
// Intervals for a day are ordered by StartTime and non-overlapping;
// the core never mutates them.
type DutyInterval struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	TripID    int64     `json:"trip_id,omitempty" db:"trip_id"`
	LogDate   string    `json:"-" db:"log_date"` // YYYY-MM-DD
	Seq       int       `json:"-" db:"seq"`
	Status    Status    `json:"status" db:"status"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	Note      string    `json:"notes,omitempty" db:"note"`
	Location  *Location `json:"location,omitempty"`
	Miles     float64   `json:"miles" db:"miles"`
}

// Duration returns the interval length in hours.
func (d *DutyInterval) Duration() float64 {
	return d.EndTime.Sub(d.StartTime).Hours()
}

// Validate checks the interval against the log-source contract.
func (d *DutyInterval) Validate() error {
	if _, ok := statusCodes[d.Status]; !ok {
		return &ErrBadStatus{Code: d.Status.Code()}
	}
	if d.EndTime.Before(d.StartTime) {
		return &ErrBadInterval{
			Start: d.StartTime.Format(time.RFC3339),
			End:   d.EndTime.Format(time.RFC3339),
		}
	}
	return nil
}

// stationaryTokens mark activities where the truck does not move.
var stationaryTokens = []string{"fueling", "break", "pickup", "drop off"}

// restMarkerTokens mark overnight/continued-rest entries whose following
// movement is a reconnection rather than live driving.
var restMarkerTokens = []string{"Overnight", "Off duty until"}

// IsStationary reports whether the note describes a stationary activity
// (fuel stop, break, pickup, drop off). Matching is case-insensitive.
func (d *DutyInterval) IsStationary() bool {
	note := strings.ToLower(d.Note)
	for _, token := range stationaryTokens {
		if strings.Contains(note, token) {
			return true
		}
	}
	return false
}

// IsRestMarker reports whether the note marks an overnight or continued
// off-duty rest span.
func (d *DutyInterval) IsRestMarker() bool {
	for _, token := range restMarkerTokens {
		if strings.Contains(d.Note, token) {
			return true
		}
	}
	return false
}

// DailySummary groups one day's duty intervals with its rollup figures.
type DailySummary struct {
	Date        string         `json:"date"`
	Miles       float64        `json:"miles"`
	DriveHours  float64        `json:"drive_hours"`
	OnDutyHours float64        `json:"on_duty_hours"`
	Logs        []DutyInterval `json:"logs"`
}

// TripDetails is the trip-details response: the trip plus its generated
// duty log grouped by day.
type TripDetails struct {
	TripID         int64          `json:"trip_id"`
	DailySummaries []DailySummary `json:"daily_summaries"`
}
