// Package feed publishes admin notification lifecycle events to Kafka so
// downstream ops dashboards can consume them without polling the backend.
package feed

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/adminwatch"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

const (
	EventOrderSurfaced = "order_surfaced"
	EventOrderResolved = "order_resolved"
)

// Event is the wire format of one notification lifecycle event.
type Event struct {
	Type      string    `json:"type"`
	OrderID   int64     `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     string    `json:"total"`
	Outcome   string    `json:"outcome,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer writes events to a Kafka topic. It implements adminwatch.Sink;
// publish failures are logged and dropped, never propagated to the watcher.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Producer{writer: writer}
}

func (p *Producer) OrderSurfaced(ctx context.Context, order domain.Order) {
	p.publish(ctx, Event{
		Type:      EventOrderSurfaced,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total.String(),
		Timestamp: time.Now(),
	})
}

func (p *Producer) OrderResolved(ctx context.Context, order domain.Order, outcome adminwatch.Outcome, callErr error) {
	event := Event{
		Type:      EventOrderResolved,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total.String(),
		Outcome:   string(outcome),
		Timestamp: time.Now(),
	}
	if callErr != nil {
		event.Error = callErr.Error()
	}
	p.publish(ctx, event)
}

func (p *Producer) publish(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Feed] Failed to marshal event: %v", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		log.Printf("[Feed] Failed to publish %s for order %d: %v", event.Type, event.OrderID, err)
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
