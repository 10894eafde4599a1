package domain

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAggregateHourly_FixedTimezone(t *testing.T) {
	times := []string{
		"2024-01-01T05:30:00Z",
		"2024-01-01T05:45:00Z",
		"2024-01-01T18:00:00Z",
	}

	h := AggregateHourly(times, time.UTC, discardLogger())

	assert.Equal(t, 2, h[5])
	assert.Equal(t, 1, h[18])
	for hour, n := range h {
		if hour == 5 || hour == 18 {
			continue
		}
		assert.Zero(t, n, "hour %d should be empty", hour)
	}
}

func TestAggregateHourly_SumEqualsParseableInputs(t *testing.T) {
	times := []string{
		"2024-01-01T00:05:00Z",
		"2024-01-01T12:00:00Z",
		"not-a-timestamp",
		"2024-01-01T23:59:59Z",
	}

	h := AggregateHourly(times, time.UTC, discardLogger())
	assert.Equal(t, 3, h.Total(), "unparsable timestamps are skipped, not counted")
}

func TestAggregateHourly_EmptyInputIsAllZero(t *testing.T) {
	h := AggregateHourly(nil, time.UTC, discardLogger())
	assert.Zero(t, h.Total())
	assert.Len(t, h.Buckets(), 24, "dense histogram keeps all 24 hours")
}

func TestAggregateHourly_OffsetConvertedToReportingTimezone(t *testing.T) {
	// 23:30 at +05:00 is 18:30 UTC.
	h := AggregateHourly([]string{"2024-01-01T23:30:00+05:00"}, time.UTC, discardLogger())
	assert.Equal(t, 1, h[18])
}

func TestParseScheduled_OffsetlessLayout(t *testing.T) {
	got, err := ParseScheduled("2024-01-01T05:30:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 5, 30, 0, 0, time.UTC), got)
}

func TestBuckets_HourAscendingWithLabels(t *testing.T) {
	var h Histogram
	h[0] = 3
	h[9] = 1

	buckets := h.Buckets()
	require.Len(t, buckets, 24)
	assert.Equal(t, HourBucket{Hour: "00:00", PPH: 3}, buckets[0])
	assert.Equal(t, HourBucket{Hour: "09:00", PPH: 1}, buckets[9])
	assert.Equal(t, HourBucket{Hour: "23:00", PPH: 0}, buckets[23])
}

func TestUpcomingDays(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.April, 26, 6, 0, 0, 0, time.UTC),
	))
	defer SetClock(nil)

	days := UpcomingDays(3, time.UTC)
	require.Len(t, days, 3)
	assert.Equal(t, Day{Value: "2024-04-26", Label: "Fri, Apr 26"}, days[0])
	assert.Equal(t, Day{Value: "2024-04-27", Label: "Sat, Apr 27"}, days[1])
	assert.Equal(t, Day{Value: "2024-04-28", Label: "Sun, Apr 28"}, days[2])
}
