// Package kafka publishes order notifications for off-process consumers
// such as provider dashboards and indexers.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"coldchain/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderPlacedMessage is the wire form of the order-placed notification.
// Amounts travel as decimal strings since they exceed every integer type.
type orderPlacedMessage struct {
	OrderID                uint64    `json:"orderId"`
	Customer               string    `json:"customer"`
	Oracle                 string    `json:"oracle"`
	TemperatureLimit       int       `json:"temperatureLimit"`
	Deadline               time.Time `json:"deadline"`
	PaymentAmount          string    `json:"paymentAmount"`
	TemperaturePenaltyRate string    `json:"temperaturePenaltyRate"`
	OvertimePenaltyRate    string    `json:"overtimePenaltyRate"`
	StakeAmount            string    `json:"stakeAmount"`
	PlacedAt               time.Time `json:"placedAt"`
}

// OrderPlacedProducer publishes order-placed notifications to a Kafka topic.
// Messages are keyed by order id so one order's notifications stay ordered
// within a partition.
type OrderPlacedProducer struct {
	writer *kafka.Writer
}

// NewOrderPlacedProducer creates a producer writing to the given topic.
func NewOrderPlacedProducer(brokers []string, topic string) *OrderPlacedProducer {
	return &OrderPlacedProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// PublishOrderPlaced serializes the event and writes it to the topic.
func (p *OrderPlacedProducer) PublishOrderPlaced(ctx context.Context, event ports.OrderPlacedEvent) error {
	payload, err := json.Marshal(orderPlacedMessage{
		OrderID:                uint64(event.OrderID),
		Customer:               event.Customer.String(),
		Oracle:                 event.Oracle.String(),
		TemperatureLimit:       event.TemperatureLimit,
		Deadline:               event.Deadline,
		PaymentAmount:          event.PaymentAmount.String(),
		TemperaturePenaltyRate: event.TemperaturePenaltyRate.String(),
		OvertimePenaltyRate:    event.OvertimePenaltyRate.String(),
		StakeAmount:            event.StakeAmount.String(),
		PlacedAt:               event.PlacedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: payload,
	})
}

// Close flushes pending messages and releases the writer.
func (p *OrderPlacedProducer) Close() error {
	return p.writer.Close()
}
