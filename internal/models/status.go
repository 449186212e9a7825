package models

import "fmt"

// Status is a driver duty status on the ELD grid.
type Status int

const (
	StatusOffDuty Status = iota // OFF
	StatusDriving               // D
	StatusOnDuty                // ON (on duty, not driving)
	StatusSleeper               // SB
)

// statusCodes maps each status to its two-letter log code.
var statusCodes = map[Status]string{
	StatusOffDuty: "OFF",
	StatusDriving: "D",
	StatusOnDuty:  "ON",
	StatusSleeper: "SB",
}

// AllStatuses lists every duty status in grid row order.
var AllStatuses = []Status{StatusOffDuty, StatusSleeper, StatusDriving, StatusOnDuty}

// ErrBadStatus is returned when input data carries a status code outside
// the closed OFF/D/ON/SB set. This is a contract violation of the log
// source and fails the whole day's computation.
type ErrBadStatus struct {
	Code string
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("unknown duty status %q", e.Code)
}

// ErrBadInterval is returned when an interval's end precedes its start.
type ErrBadInterval struct {
	Start string
	End   string
}

func (e *ErrBadInterval) Error() string {
	return fmt.Sprintf("inverted duty interval: end %s before start %s", e.End, e.Start)
}

// ParseStatus converts a log status code into a Status.
func ParseStatus(code string) (Status, error) {
	switch code {
	case "OFF":
		return StatusOffDuty, nil
	case "D":
		return StatusDriving, nil
	case "ON":
		return StatusOnDuty, nil
	case "SB":
		return StatusSleeper, nil
	default:
		return 0, &ErrBadStatus{Code: code}
	}
}

// Code returns the two-letter log code for the status.
func (s Status) Code() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return "?"
}

// Label returns the human-readable status name.
func (s Status) Label() string {
	switch s {
	case StatusDriving:
		return "Driving"
	case StatusOnDuty:
		return "On Duty"
	case StatusOffDuty:
		return "Off Duty"
	case StatusSleeper:
		return "Sleeper Berth"
	default:
		return s.Code()
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return s.Code()
}

// MarshalText emits the status as its log code. Text marshaling covers
// both JSON values and map keys.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Code()), nil
}

// UnmarshalText parses a status from its log code.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
