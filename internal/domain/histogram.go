package domain

import (
	"fmt"
	"log/slog"
	"time"
)

// HourBucket is one point of the hourly histogram, serialized in the shape
// the chart consumes.
type HourBucket struct {
	Hour string `json:"hour"` // "HH:00"
	PPH  int    `json:"pph"`
}

// Histogram is a dense 24-slot count of scheduled movements per hour of day.
type Histogram [24]int

// Total returns the sum of all hour counts, i.e. the number of timestamps
// that were successfully bucketed.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Buckets returns the histogram as an hour-ascending sequence of
// {hour, pph} pairs, all 24 hours present.
func (h Histogram) Buckets() []HourBucket {
	buckets := make([]HourBucket, len(h))
	for hour, n := range h {
		buckets[hour] = HourBucket{
			Hour: fmt.Sprintf("%02d:00", hour),
			PPH:  n,
		}
	}
	return buckets
}

// scheduledLayouts are the timestamp formats aviationstack has been observed
// to emit. RFC 3339 with offset is the documented form; the offset-less
// variant shows up on some free-tier responses.
var scheduledLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseScheduled parses a single scheduled timestamp string.
func ParseScheduled(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range scheduledLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AggregateHourly buckets scheduled timestamps by hour of day in the given
// reporting timezone. Timestamps that fail to parse are logged and skipped;
// a bad record never aborts the aggregation. Empty input yields an all-zero
// histogram.
func AggregateHourly(times []string, loc *time.Location, logger *slog.Logger) Histogram {
	if loc == nil {
		loc = time.Local
	}

	var h Histogram
	for _, value := range times {
		t, err := ParseScheduled(value, loc)
		if err != nil {
			logger.Warn("skipping unparsable scheduled time", "value", value, "error", err)
			continue
		}
		h[t.In(loc).Hour()]++
	}
	return h
}

// ScheduleSnapshot is the aggregated result for one (airport, date) key.
type ScheduleSnapshot struct {
	Airport   string       `json:"airport"`
	Date      string       `json:"date"`
	Source    string       `json:"source"` // "cache" or "api"
	FetchedAt time.Time    `json:"fetched_at"`
	Data      []HourBucket `json:"data"`
}

// Snapshot sources.
const (
	SourceAPI   = "api"
	SourceCache = "cache"
)
