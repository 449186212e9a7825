// Package schedule generates a trip's daily duty log from its endpoints.
//
// The generator plans the haul at a fixed average road speed over the
// haversine distance, inserting the mandated interruptions: a 30-minute
// break after 8 hours of driving, a fuel stop every 1000 miles, and an
// overnight rest when the daily driving or duty window is exhausted.
// Each day starts at 06:30 with a 30-minute pre-trip inspection.
package schedule

import (
	"math"
	"time"

	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/spatial"
)

const (
	maxDriveHoursPerDay      = 11
	maxOnDutyHoursPerDay     = 14
	maxDriveHoursBeforeBreak = 8
	fuelStopMiles            = 1000
	pickupDropoffMinutes     = 60
	preTripMinutes           = 30
	breakMinutes             = 30

	shiftStartHour   = 6
	shiftStartMinute = 30

	defaultSpeedMPH = 55
)

// Note strings written into generated entries. The timeline and route
// classifiers match on their vocabulary (break, fueling, pickup, drop
// off, Overnight, Off duty until).
const (
	noteBeforeShift = "Off duty - Before shift start"
	notePreTrip     = "Pre-trip /TIV"
	notePickup      = "Pickup Activity"
	noteDropoff     = "Dropoff Activity"
	noteFuelStop    = "Fuel stop"
	noteBreak       = "Required 30-minute break after 8 hours of driving"
	noteUntilMidnt  = "Off duty until midnight (continues to next day)"
	noteOvernight   = "Overnight rest period (continued from previous day)"
	notePostTrip    = "Post-trip TIV/Off duty"
)

// Generator plans duty logs for a trip.
type Generator struct {
	speedMPH float64
}

// NewGenerator creates a generator with the default average road speed.
func NewGenerator() *Generator {
	return &Generator{speedMPH: defaultSpeedMPH}
}

// run carries the mutable planning state for one trip.
type run struct {
	gen     *Generator
	entries []models.DutyInterval
	now     time.Time

	truckLat, truckLon float64
	truckName          string

	dailyDrive      float64
	dailyOnDuty     float64
	driveSinceBreak float64
	milesSinceFuel  float64
}

// Generate plans the duty log for a trip starting on the given day.
// Only the date part of start is used; the shift begins at 06:30.
func (g *Generator) Generate(trip *models.Trip, start time.Time) []models.DutyInterval {
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	shiftStart := base.Add(shiftStartHour*time.Hour + shiftStartMinute*time.Minute)

	r := &run{
		gen:       g,
		now:       shiftStart,
		truckLat:  trip.CurrentLat,
		truckLon:  trip.CurrentLon,
		truckName: trip.CurrentLocation,
	}

	// Off duty from midnight until the shift begins, then the inspection.
	r.add(models.StatusOffDuty, base, shiftStart, noteBeforeShift, 0)
	r.onDuty(preTripMinutes, notePreTrip)

	r.drive(trip.PickupLat, trip.PickupLon, trip.PickupLocation)
	r.stationary(pickupDropoffMinutes, notePickup)

	r.drive(trip.DropoffLat, trip.DropoffLon, trip.DropoffLocation)
	r.stationary(pickupDropoffMinutes, noteDropoff)

	// Off duty for the rest of the final day.
	midnight := dayStart(r.now).AddDate(0, 0, 1)
	if r.now.Before(midnight) {
		r.add(models.StatusOffDuty, r.now, midnight, notePostTrip, 0)
	}

	return number(r.entries)
}

// drive plans the driving leg from the truck's position to (lat, lon),
// interrupting for breaks, fuel stops and overnight rests.
func (r *run) drive(lat, lon float64, name string) {
	fromLat, fromLon := r.truckLat, r.truckLon
	total := spatial.MilesBetween(fromLat, fromLon, lat, lon)
	driven := 0.0

	// Tolerance keeps float accumulation from producing degenerate chunks.
	const eps = 1e-9

	for total-driven > eps {
		if r.dailyDrive >= maxDriveHoursPerDay-eps || r.dailyOnDuty >= maxOnDutyHoursPerDay-eps {
			r.overnight()
			continue
		}
		if r.driveSinceBreak >= maxDriveHoursBeforeBreak-eps {
			r.takeBreak()
			continue
		}
		if r.milesSinceFuel >= fuelStopMiles-eps {
			r.fuelStop()
			continue
		}

		remaining := (total - driven) / r.gen.speedMPH
		chunk := remaining
		if h := maxDriveHoursPerDay - r.dailyDrive; h < chunk {
			chunk = h
		}
		if h := maxOnDutyHoursPerDay - r.dailyOnDuty; h < chunk {
			chunk = h
		}
		if h := maxDriveHoursBeforeBreak - r.driveSinceBreak; h < chunk {
			chunk = h
		}
		if h := (fuelStopMiles - r.milesSinceFuel) / r.gen.speedMPH; h < chunk {
			chunk = h
		}

		miles := chunk * r.gen.speedMPH
		end := r.now.Add(time.Duration(chunk * float64(time.Hour)))
		r.add(models.StatusDriving, r.now, end, "", miles)
		r.now = end

		driven += miles
		r.dailyDrive += chunk
		r.dailyOnDuty += chunk
		r.driveSinceBreak += chunk
		r.milesSinceFuel += miles

		// Move the truck along the great circle to the stop point.
		frac := driven / total
		r.truckLat, r.truckLon = spatial.Interpolate(frac, fromLat, fromLon, lat, lon)
		r.truckName = ""
	}

	r.truckLat, r.truckLon = lat, lon
	r.truckName = name
}

// stationary logs an on-duty activity at the truck's position, rolling
// over to the next day first when the duty window cannot fit it.
func (r *run) stationary(minutes int, note string) {
	if r.dailyOnDuty+float64(minutes)/60 > maxOnDutyHoursPerDay {
		r.overnight()
	}
	r.onDuty(minutes, note)
}

func (r *run) onDuty(minutes int, note string) {
	end := r.now.Add(time.Duration(minutes) * time.Minute)
	r.add(models.StatusOnDuty, r.now, end, note, 0)
	r.now = end
	r.dailyOnDuty += float64(minutes) / 60
}

func (r *run) takeBreak() {
	end := r.now.Add(breakMinutes * time.Minute)
	r.add(models.StatusOffDuty, r.now, end, noteBreak, 0)
	r.now = end
	r.dailyOnDuty += float64(breakMinutes) / 60
	r.driveSinceBreak = 0
}

func (r *run) fuelStop() {
	r.onDuty(breakMinutes, noteFuelStop)
	r.milesSinceFuel = 0
}

// overnight rests the driver until 06:30 the next day, splitting the
// off-duty span at midnight, then runs the morning inspection.
func (r *run) overnight() {
	midnight := dayStart(r.now).AddDate(0, 0, 1)
	nextShift := midnight.Add(shiftStartHour*time.Hour + shiftStartMinute*time.Minute)

	r.add(models.StatusOffDuty, r.now, midnight, noteUntilMidnt, 0)
	r.add(models.StatusOffDuty, midnight, nextShift, noteOvernight, 0)
	r.now = nextShift

	r.dailyDrive = 0
	r.dailyOnDuty = 0
	r.driveSinceBreak = 0

	r.onDuty(preTripMinutes, notePreTrip)
}

func (r *run) add(status models.Status, start, end time.Time, note string, miles float64) {
	if !end.After(start) {
		return
	}
	r.entries = append(r.entries, models.DutyInterval{
		Status:    status,
		StartTime: start,
		EndTime:   end,
		Note:      note,
		Miles:     miles,
		Location: &models.Location{
			Lat:  r.truckLat,
			Lon:  r.truckLon,
			Name: r.truckName,
		},
	})
}

// number assigns LogDate and per-day sequence numbers. An entry ending
// exactly at midnight belongs to the day it started in.
func number(entries []models.DutyInterval) []models.DutyInterval {
	seq := 0
	prevDate := ""
	for i := range entries {
		date := entries[i].StartTime.Format("2006-01-02")
		if date != prevDate {
			seq = 0
			prevDate = date
		}
		entries[i].LogDate = date
		entries[i].Seq = seq
		seq++
	}
	return entries
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Summarize groups a stored duty log into per-day rollups: total miles,
// driving hours and on-duty hours (driving plus on-duty not driving).
func Summarize(entries []models.DutyInterval) []models.DailySummary {
	var days []models.DailySummary
	byDate := map[string]int{}

	for _, e := range entries {
		idx, ok := byDate[e.LogDate]
		if !ok {
			idx = len(days)
			byDate[e.LogDate] = idx
			days = append(days, models.DailySummary{Date: e.LogDate})
		}

		d := &days[idx]
		d.Logs = append(d.Logs, e)
		d.Miles += e.Miles
		switch e.Status {
		case models.StatusDriving:
			d.DriveHours += e.Duration()
			d.OnDutyHours += e.Duration()
		case models.StatusOnDuty:
			d.OnDutyHours += e.Duration()
		}
	}

	for i := range days {
		days[i].Miles = round2(days[i].Miles)
		days[i].DriveHours = round2(days[i].DriveHours)
		days[i].OnDutyHours = round2(days[i].OnDutyHours)
	}
	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
