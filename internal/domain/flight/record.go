package flight

import (
	"strings"
	"time"
)

// Record is a departures-board row. Status is free text ("On Time",
// "Delayed", "Boarding"); the booking ledger only ever checks existence.
type Record struct {
	FlightNumber  string `json:"flightNumber"`
	Destination   string `json:"destination"`
	ScheduledTime string `json:"scheduledTime"`
	EstimatedTime string `json:"estimatedTime"`
	Gate          string `json:"gate"`
	Terminal      string `json:"terminal"`
	Status        string `json:"status"`
}

// NormalizeClockTime converts a bare "HH:MM" value into an RFC3339 timestamp
// for today in loc. Values that already carry a date part (contain 'T') and
// values that fail to parse pass through unchanged; this is a convenience,
// not a scheduling engine.
func NormalizeClockTime(value string, loc *time.Location, now time.Time) string {
	if value == "" || strings.Contains(value, "T") {
		return value
	}

	clock, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}

	today := now.In(loc)
	ts := time.Date(today.Year(), today.Month(), today.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	return ts.Format(time.RFC3339)
}
