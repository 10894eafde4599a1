// Command genmock writes an aviationstack-shaped fixture file with a
// deterministic day of scheduled traffic for one airport. The output feeds
// the client tests' testdata and doubles as a payload for local mock servers.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -airport LAX \
//	  -date 2024-04-26 \
//	  -out internal/adapter/aviationstack/testdata/flights_LAX_2024-04-26.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/couchcryptid/flight-traffic-service/internal/domain"
)

// hourlyProfile is a plausible daily traffic curve for a mid-size airport:
// quiet overnight, morning and evening peaks. Sums to 100 records.
var hourlyProfile = [24]int{0, 0, 0, 0, 1, 2, 4, 6, 7, 7, 6, 5, 5, 6, 6, 7, 7, 8, 7, 6, 4, 3, 2, 1}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	airport := flag.String("airport", "LAX", "airport IATA code")
	date := flag.String("date", "2024-04-26", "flight date (YYYY-MM-DD)")
	out := flag.String("out", "", "output path for the fixture JSON")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if !domain.ValidDate(*date) {
		return fmt.Errorf("invalid -date %q: want YYYY-MM-DD", *date)
	}

	records := generateDay(*airport, *date)

	payload := struct {
		Data []domain.FlightRecord `json:"data"`
	}{Data: records}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	log.Printf("wrote %d records to %s", len(records), *out)
	return nil
}

// generateDay produces the fixture's flight records: for each hour,
// hourlyProfile[hour] flights at deterministic minutes, alternating between
// departures from and arrivals at the airport.
func generateDay(airport, date string) []domain.FlightRecord {
	var records []domain.FlightRecord
	seq := 0
	for hour, count := range hourlyProfile {
		for i := 0; i < count; i++ {
			scheduled := fmt.Sprintf("%sT%02d:%02d:00+00:00", date, hour, (i*7)%60)
			var rec domain.FlightRecord
			rec.FlightDate = date
			rec.FlightStatus = "scheduled"
			if seq%2 == 0 {
				rec.Departure = domain.FlightEndpoint{IATA: airport, Scheduled: scheduled}
				rec.Arrival = domain.FlightEndpoint{IATA: "JFK"}
			} else {
				rec.Departure = domain.FlightEndpoint{IATA: "ORD"}
				rec.Arrival = domain.FlightEndpoint{IATA: airport, Scheduled: scheduled}
			}
			records = append(records, rec)
			seq++
		}
	}
	return records
}
