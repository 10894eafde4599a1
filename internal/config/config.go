package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Aviationstack upstream configuration. APIKey may be empty: the service
	// still boots, but every fetch fails with a config error and /readyz
	// reports not ready.
	APIKey          string
	UpstreamTimeout time.Duration
	UpstreamLimit   int

	// DaysAhead is the number of calendar days offered by the day selector.
	DaysAhead int

	// BucketTZ names the reporting timezone used for hour bucketing: an IANA
	// zone name, or "Local" for the execution environment's zone.
	BucketTZ       string
	BucketLocation *time.Location

	// Kafka snapshot publishing (optional, flagged via KAFKA_BROKERS /
	// KAFKA_ENABLED like the rest of the feature toggles).
	KafkaEnabled       bool
	KafkaBrokers       []string
	KafkaSnapshotTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	upstreamTimeout, err := parseDuration("AVIATIONSTACK_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	upstreamLimit, err := parseInt("AVIATIONSTACK_LIMIT", 1000, 1, 1000)
	if err != nil {
		return nil, err
	}

	daysAhead, err := parseInt("DAYS_AHEAD", 7, 1, 30)
	if err != nil {
		return nil, err
	}

	bucketTZ := envOrDefault("BUCKET_TZ", "Local")
	bucketLoc, err := loadLocation(bucketTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid BUCKET_TZ %q: %w", bucketTZ, err)
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		APIKey:          os.Getenv("AVIATIONSTACK_KEY"),
		UpstreamTimeout: upstreamTimeout,
		UpstreamLimit:   upstreamLimit,

		DaysAhead:      daysAhead,
		BucketTZ:       bucketTZ,
		BucketLocation: bucketLoc,

		KafkaEnabled:       kafkaEnabled,
		KafkaBrokers:       brokers,
		KafkaSnapshotTopic: envOrDefault("KAFKA_SNAPSHOT_TOPIC", "flight-schedule-snapshots"),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSnapshotTopic == "" {
		return nil, fmt.Errorf("KAFKA_SNAPSHOT_TOPIC must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration", key)
	}
	return d, nil
}

func parseInt(key string, fallback, minVal, maxVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < minVal || n > maxVal {
		return 0, fmt.Errorf("invalid %s: must be an integer in [%d, %d]", key, minVal, maxVal)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func loadLocation(name string) (*time.Location, error) {
	if name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
