package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire format for flight dates (ISO calendar date).
const DateLayout = "2006-01-02"

// FlightEndpoint is one side of a flight record (departure or arrival).
// Only the fields this service reads are modeled; the upstream record carries
// many more.
type FlightEndpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"` // ISO-8601, may be empty
}

// FlightRecord is a single scheduled flight as returned by aviationstack.
// Read-only upstream data; this service never owns or mutates it.
type FlightRecord struct {
	FlightDate   string         `json:"flight_date"`
	FlightStatus string         `json:"flight_status"`
	Departure    FlightEndpoint `json:"departure"`
	Arrival      FlightEndpoint `json:"arrival"`
}

// ScheduledTime resolves the record's single timestamp: departure.scheduled
// preferred, arrival.scheduled as fallback, empty string when neither is set.
func (f FlightRecord) ScheduledTime() string {
	if f.Departure.Scheduled != "" {
		return f.Departure.Scheduled
	}
	return f.Arrival.Scheduled
}

// ExtractScheduledTimes resolves each record to its scheduled timestamp,
// dropping records that have neither a departure nor an arrival time.
func ExtractScheduledTimes(records []FlightRecord) []string {
	times := make([]string, 0, len(records))
	for _, f := range records {
		if t := f.ScheduledTime(); t != "" {
			times = append(times, t)
		}
	}
	return times
}

// NormalizeAirportCode trims and uppercases an airport code and converts
// four-letter US ICAO codes to IATA by stripping the leading "K"
// (KLAX → LAX, KTPA → TPA).
func NormalizeAirportCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 4 && strings.HasPrefix(code, "K") {
		return code[1:]
	}
	return code
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD calendar date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
