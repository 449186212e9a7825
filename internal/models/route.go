package models

// LegStyle describes how a route segment is drawn on the map.
type LegStyle struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
	// DashArray is empty for solid lines.
	DashArray string `json:"dashArray,omitempty"`
}

// Leg style constants, matching the map renderer's palette. Overnight
// reconnections are deemphasized so they read as "road not driven live".
var (
	DrivingLegStyle = LegStyle{Color: "#3b82f6", Weight: 4, Opacity: 0.7}
	RestLegStyle    = LegStyle{Color: "#4f46e5", Weight: 4, Opacity: 0.5, DashArray: "5, 10"}
)

// MovementLeg pairs two location-bearing duty intervals eligible for a
// road-geometry lookup.
type MovementLeg struct {
	From  DutyInterval `json:"from"`
	To    DutyInterval `json:"to"`
	Style LegStyle     `json:"style"`
	// Miles is the great-circle distance between the endpoints.
	Miles float64 `json:"miles"`
}

// LatLon is one decoded route coordinate in [lat, lon] order.
type LatLon [2]float64

// RouteSegment is the drawable geometry for one successfully resolved leg.
type RouteSegment struct {
	Points    []LatLon `json:"points"`
	Color     string   `json:"color"`
	Weight    int      `json:"weight"`
	Opacity   float64  `json:"opacity"`
	DashArray string   `json:"dashArray,omitempty"`
}

// RouteView is the full derived route model for one day.
type RouteView struct {
	Date     string         `json:"date"`
	Segments []RouteSegment `json:"segments"`
}
