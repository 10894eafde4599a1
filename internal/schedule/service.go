package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/flight-traffic-service/internal/domain"
	"github.com/couchcryptid/flight-traffic-service/internal/observability"
)

// FlightFetcher retrieves raw flight records for one airport day.
type FlightFetcher interface {
	FetchScheduled(ctx context.Context, airportIATA, date string) ([]domain.FlightRecord, error)
}

// SnapshotPublisher ships a freshly aggregated snapshot to downstream
// consumers.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, snap domain.ScheduleSnapshot) error
}

// Service answers schedule queries through a per-(airport, date) day cache.
// Each key is fetched from upstream at most once per process lifetime; a new
// calendar day produces a new key, so entries never need expiry.
type Service struct {
	fetcher       FlightFetcher
	publisher     SnapshotPublisher // nil disables publishing
	loc           *time.Location
	hasCredential bool
	logger        *slog.Logger
	metrics       *observability.Metrics

	mu      sync.Mutex
	entries map[string]*entry
}

// entry is one cache slot. done is closed when the computation finishes;
// concurrent callers for an in-flight key wait on it instead of issuing a
// duplicate upstream fetch.
type entry struct {
	done chan struct{}
	snap domain.ScheduleSnapshot
	err  error
}

// NewService creates a schedule service. Pass a nil publisher to disable
// snapshot publishing.
func NewService(fetcher FlightFetcher, publisher SnapshotPublisher, loc *time.Location, hasCredential bool, logger *slog.Logger, metrics *observability.Metrics) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		fetcher:       fetcher,
		publisher:     publisher,
		loc:           loc,
		hasCredential: hasCredential,
		logger:        logger,
		metrics:       metrics,
		entries:       make(map[string]*entry),
	}
}

// CheckReadiness reports whether the service can answer schedule queries.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.hasCredential {
		return domain.ErrNoAPIKey
	}
	return nil
}

// Day returns the hourly schedule snapshot for one airport and date,
// fetching and aggregating on the first request for the key and serving the
// cached entry afterwards.
func (s *Service) Day(ctx context.Context, airport, date string) (domain.ScheduleSnapshot, error) {
	if airport == "" || date == "" {
		return domain.ScheduleSnapshot{}, domain.Validationf("missing airport or date parameter")
	}
	if !domain.ValidDate(date) {
		return domain.ScheduleSnapshot{}, domain.Validationf("invalid date %q: want YYYY-MM-DD", date)
	}
	airport = domain.NormalizeAirportCode(airport)

	key := airport + "|" + date

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.mu.Unlock()
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return s.await(ctx, e)
	}

	e := &entry{done: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()
	s.metrics.CacheLookups.WithLabelValues("miss").Inc()

	e.snap, e.err = s.compute(ctx, airport, date)
	if e.err != nil {
		// Errors are not cached: free the key so a later request can retry.
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
	}
	s.metrics.CacheEntries.Set(float64(s.size()))
	close(e.done)

	if e.err != nil {
		s.metrics.ScheduleRequests.WithLabelValues("error").Inc()
		return domain.ScheduleSnapshot{}, e.err
	}
	s.metrics.ScheduleRequests.WithLabelValues(domain.SourceAPI).Inc()
	return e.snap, nil
}

// await blocks until an existing entry's computation finishes and returns its
// result tagged as served from cache.
func (s *Service) await(ctx context.Context, e *entry) (domain.ScheduleSnapshot, error) {
	select {
	case <-ctx.Done():
		return domain.ScheduleSnapshot{}, ctx.Err()
	case <-e.done:
	}

	if e.err != nil {
		s.metrics.ScheduleRequests.WithLabelValues("error").Inc()
		return domain.ScheduleSnapshot{}, e.err
	}

	snap := e.snap
	snap.Source = domain.SourceCache
	s.metrics.ScheduleRequests.WithLabelValues(domain.SourceCache).Inc()
	return snap, nil
}

// compute runs the fetch → extract → aggregate pass and publishes the fresh
// snapshot when a publisher is configured.
func (s *Service) compute(ctx context.Context, airport, date string) (domain.ScheduleSnapshot, error) {
	records, err := s.fetcher.FetchScheduled(ctx, airport, date)
	if err != nil {
		return domain.ScheduleSnapshot{}, fmt.Errorf("fetch schedule for %s on %s: %w", airport, date, err)
	}

	times := domain.ExtractScheduledTimes(records)
	h := domain.AggregateHourly(times, s.loc, s.logger)
	if skipped := len(times) - h.Total(); skipped > 0 {
		s.metrics.ParseSkips.Add(float64(skipped))
	}

	snap := domain.ScheduleSnapshot{
		Airport:   airport,
		Date:      date,
		Source:    domain.SourceAPI,
		FetchedAt: domain.Now(),
		Data:      h.Buckets(),
	}

	s.logger.Info("aggregated schedule",
		"airport", airport,
		"date", date,
		"records", len(records),
		"bucketed", h.Total(),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishSnapshot(ctx, snap); err != nil {
			// Publishing is best-effort enrichment for downstream consumers;
			// the caller still gets the snapshot.
			s.logger.Warn("snapshot publish failed", "airport", airport, "date", date, "error", err)
		} else {
			s.metrics.SnapshotsPublished.Inc()
		}
	}

	return snap, nil
}

func (s *Service) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
