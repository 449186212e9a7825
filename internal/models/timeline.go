package models

import "time"

// TimelinePlacement is one interval projected onto the 24-hour log grid.
// StartPos and EndPos are percentage offsets within [0,100].
type TimelinePlacement struct {
	Status     Status  `json:"status"`
	StartPos   float64 `json:"start_pos"`
	EndPos     float64 `json:"end_pos"`
	Stationary bool    `json:"stationary"`
}

// Transition records a duty-status change between two adjacent intervals.
// Location comes from the interval being left; Time/EndTime/Activity come
// from the interval being entered. Location.Name may be empty when the
// coordinates are absent or resolution failed.
type Transition struct {
	From     Status    `json:"from"`
	To       Status    `json:"to"`
	Time     time.Time `json:"time"`
	EndTime  time.Time `json:"end_time"`
	Location Location  `json:"location"`
	Activity string    `json:"activity"`
}

// StatusTotals holds per-status minute totals for one day, both raw and as
// smoothed display strings. The display values are rounded per status
// independently, so the four strings need not sum to exactly 24h.
type StatusTotals struct {
	Minutes map[Status]int    `json:"minutes"`
	Display map[Status]string `json:"display"`
}

// TimelineView is the full derived timeline for one day, handed to the
// log-sheet renderer.
type TimelineView struct {
	Date        string              `json:"date"`
	Placements  []TimelinePlacement `json:"placements"`
	Transitions []Transition        `json:"transitions"`
	Totals      StatusTotals        `json:"totals"`
}
