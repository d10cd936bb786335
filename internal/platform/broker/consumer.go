package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"sduiGateway/internal/modules/realtime/domain"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

func (c *KafkaConsumer) Consume(ctx context.Context, handler func(domain.EntrypointUpdate) error) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		update, ok := decodeEntrypointUpdate(m)
		if !ok {
			slog.Warn("kafka message without entrypoint key",
				slog.String("topic", m.Topic),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset))
			continue
		}
		slog.Info("entrypoint update consumed",
			slog.String("topic", m.Topic),
			slog.Int64("offset", m.Offset),
			slog.String("entrypointKey", update.Key),
			slog.String("action", update.Action))
		if err := handler(update); err != nil {
			slog.Warn("kafka handler error", slog.Any("error", err))
		}
	}
}

type rawEvent struct {
	EntrypointKey string `json:"entrypointKey"`
	Action        string `json:"action"`
}

// decodeEntrypointUpdate accepts either the JSON event the authoring side
// publishes or a bare entrypoint key as the message value.
func decodeEntrypointUpdate(m kafka.Message) (domain.EntrypointUpdate, bool) {
	update := domain.EntrypointUpdate{Action: domain.ActionUpdated, Timestamp: time.Now().UTC()}

	var event rawEvent
	if err := json.Unmarshal(m.Value, &event); err == nil && strings.TrimSpace(event.EntrypointKey) != "" {
		update.Key = strings.TrimSpace(event.EntrypointKey)
		if strings.TrimSpace(event.Action) != "" {
			update.Action = strings.TrimSpace(event.Action)
		}
		return update, true
	}

	if key := strings.TrimSpace(string(m.Value)); key != "" && !strings.HasPrefix(key, "{") {
		update.Key = key
		return update, true
	}
	return domain.EntrypointUpdate{}, false
}
