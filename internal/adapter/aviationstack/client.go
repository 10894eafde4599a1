package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/flight-traffic-service/internal/domain"
	"github.com/couchcryptid/flight-traffic-service/internal/observability"
)

// Client fetches scheduled flights from the aviationstack API.
//
// Query strategy: airport_iata, which returns both departures and arrivals
// for the airport. The dep_iata variant would report departures only and
// halve the traffic picture.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limit      int
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an aviationstack client. An empty apiKey is allowed at
// construction time; FetchScheduled then fails with domain.ErrNoAPIKey.
func NewClient(apiKey string, timeout time.Duration, limit int, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.aviationstack.com/v1",
		limit:   limit,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchScheduled issues exactly one GET for the airport's flights on the
// given date. No retries; any failure is surfaced to the caller.
func (c *Client) FetchScheduled(ctx context.Context, airportIATA, date string) ([]domain.FlightRecord, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}

	params := url.Values{
		"access_key":   {c.apiKey},
		"airport_iata": {airportIATA},
		"flight_date":  {date},
		"limit":        {fmt.Sprintf("%d", c.limit)},
	}
	fullURL := c.baseURL + "/flights?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, &domain.UpstreamError{Err: fmt.Errorf("flights request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, &domain.UpstreamError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", body),
		}
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	// data may be absent or null on errors the API reports with a 200 body.
	if apiResp.Data == nil {
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Err: errors.New("response missing data list")}
	}

	records := *apiResp.Data
	c.metrics.UpstreamRequests.WithLabelValues("success").Inc()
	c.metrics.FlightsFetched.Observe(float64(len(records)))
	c.logger.Debug("fetched scheduled flights",
		"airport", airportIATA,
		"date", date,
		"records", len(records),
	)
	return records, nil
}

// Aviationstack API response envelope. Data is a pointer so a null or
// missing list is distinguishable from a day with zero flights.
type response struct {
	Data *[]domain.FlightRecord `json:"data"`
}
