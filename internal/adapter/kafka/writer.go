package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/flight-traffic-service/internal/config"
	"github.com/couchcryptid/flight-traffic-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes schedule snapshots to a Kafka topic so downstream
// consumers see the same histogram the UI does.
// It implements schedule.SnapshotPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured snapshot topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSnapshotTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSnapshot serializes and publishes one schedule snapshot.
func (w *Writer) PublishSnapshot(ctx context.Context, snap domain.ScheduleSnapshot) error {
	msg, err := serializeToMessage(snap)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a snapshot into a Kafka message keyed by
// AIRPORT|DATE so one partition sees an airport day's history in order.
func serializeToMessage(snap domain.ScheduleSnapshot) (kafkago.Message, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize schedule snapshot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(snap.Airport + "|" + snap.Date),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "airport", Value: []byte(snap.Airport)},
			{Key: "fetched_at", Value: []byte(snap.FetchedAt.Format(time.RFC3339))},
		},
	}, nil
}
