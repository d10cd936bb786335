package broker

import (
	"context"

	"sduiGateway/internal/modules/realtime/domain"
)

// UpdateHandler reacts to one consumed entrypoint update.
type UpdateHandler interface {
	Handle(ctx context.Context, update domain.EntrypointUpdate) error
}

// StartKafkaConsumers runs one consumer goroutine per topic, dispatching every
// decoded update to the handler. With no brokers configured nothing starts;
// local runs without Kafka simply skip realtime invalidation.
func StartKafkaConsumers(ctx context.Context, handler UpdateHandler, brokers []string, groupID string, topics []string) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(update domain.EntrypointUpdate) error {
				return handler.Handle(ctx, update)
			})
		}(topic)
	}
}
