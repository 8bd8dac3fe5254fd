// Package kafka publishes order lifecycle events to a Kafka topic for
// downstream consumers (notifications, analytics). Publishing happens after
// the store commit and is best-effort: callers log failures without
// failing the primary operation.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const (
	eventOrderCreated       = "order.created"
	eventOrderStatusChanged = "order.status_changed"
)

// orderCreatedEvent is the wire format for newly committed orders.
type orderCreatedEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	BuyerID    string    `json:"buyer_id"`
	SellerID   string    `json:"seller_id"`
	Status     string    `json:"status"`
	TotalKobo  int64     `json:"total_kobo"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// orderStatusChangedEvent is the wire format for committed status transitions.
type orderStatusChangedEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements OrderEventPublisher over a Kafka topic. Events are
// keyed by order ID so all events for one order land on the same partition
// in commit order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// OrderCreated announces a newly committed order.
func (p *Publisher) OrderCreated(ctx context.Context, aggregate *order.Order) error {
	event := orderCreatedEvent{
		Event:      eventOrderCreated,
		OrderID:    aggregate.ID().String(),
		Number:     aggregate.Number(),
		BuyerID:    aggregate.BuyerID().String(),
		SellerID:   aggregate.SellerID().String(),
		Status:     aggregate.Status().String(),
		TotalKobo:  aggregate.TotalAmount().Kobo(),
		ItemCount:  len(aggregate.Items()),
		OccurredAt: time.Now().UTC(),
	}

	return p.publish(ctx, aggregate.ID(), event)
}

// OrderStatusChanged announces a committed status transition.
func (p *Publisher) OrderStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	from, to order.Status,
) error {
	event := orderStatusChangedEvent{
		Event:      eventOrderStatusChanged,
		OrderID:    orderID.String(),
		From:       from.String(),
		To:         to.String(),
		OccurredAt: time.Now().UTC(),
	}

	return p.publish(ctx, orderID, event)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, key kernel.UUID, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: value,
		Time:  time.Now(),
	})
}

// NopPublisher implements OrderEventPublisher without a broker. Used when
// no Kafka host is configured, e.g. in local development and tests.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that discards all events.
func NewNopPublisher() NopPublisher {
	return NopPublisher{}
}

// OrderCreated discards the event.
func (NopPublisher) OrderCreated(_ context.Context, _ *order.Order) error {
	return nil
}

// OrderStatusChanged discards the event.
func (NopPublisher) OrderStatusChanged(_ context.Context, _ kernel.UUID, _, _ order.Status) error {
	return nil
}
