//go:build aviationstack

package aviationstack

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/flight-traffic-service/internal/domain"
	"github.com/couchcryptid/flight-traffic-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real aviationstack API and require a valid
// AVIATIONSTACK_KEY env var. Each run spends API quota.
// Run with: go test -tags=aviationstack ./internal/adapter/aviationstack/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	key := os.Getenv("AVIATIONSTACK_KEY")
	if key == "" {
		t.Fatal("AVIATIONSTACK_KEY must be set to run smoke tests")
	}
	return &Client{
		apiKey:     key,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.aviationstack.com/v1",
		limit:      100,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSmoke_FetchScheduled(t *testing.T) {
	c := smokeClient(t)

	date := domain.Now().UTC().Format(domain.DateLayout)
	records, err := c.FetchScheduled(context.Background(), "LAX", date)
	require.NoError(t, err)
	require.NotEmpty(t, records, "LAX should have scheduled traffic today")

	times := domain.ExtractScheduledTimes(records)
	assert.NotEmpty(t, times, "most records should carry a scheduled time")
}
