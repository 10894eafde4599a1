package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAirportCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "iata passthrough", in: "LAX", want: "LAX"},
		{name: "lowercase iata", in: "lax", want: "LAX"},
		{name: "us icao stripped", in: "KLAX", want: "LAX"},
		{name: "lowercase icao", in: "ktpa", want: "TPA"},
		{name: "non-us icao kept", in: "EGLL", want: "EGLL"},
		{name: "whitespace trimmed", in: "  jfk ", want: "JFK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAirportCode(tt.in))
		})
	}
}

func TestScheduledTime_PrefersDeparture(t *testing.T) {
	f := FlightRecord{
		Departure: FlightEndpoint{Scheduled: "2024-01-01T05:30:00+00:00"},
		Arrival:   FlightEndpoint{Scheduled: "2024-01-01T09:10:00+00:00"},
	}
	assert.Equal(t, "2024-01-01T05:30:00+00:00", f.ScheduledTime())
}

func TestScheduledTime_FallsBackToArrival(t *testing.T) {
	f := FlightRecord{
		Arrival: FlightEndpoint{Scheduled: "2024-01-01T09:10:00+00:00"},
	}
	assert.Equal(t, "2024-01-01T09:10:00+00:00", f.ScheduledTime())
}

func TestExtractScheduledTimes_DropsEmptyRecords(t *testing.T) {
	records := []FlightRecord{
		{Departure: FlightEndpoint{Scheduled: "2024-01-01T05:30:00+00:00"}},
		{}, // neither timestamp: dropped
		{Arrival: FlightEndpoint{Scheduled: "2024-01-01T18:00:00+00:00"}},
	}

	times := ExtractScheduledTimes(records)
	assert.Equal(t, []string{
		"2024-01-01T05:30:00+00:00",
		"2024-01-01T18:00:00+00:00",
	}, times)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-01"))
	assert.False(t, ValidDate("01/01/2024"))
	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate(""))
}
