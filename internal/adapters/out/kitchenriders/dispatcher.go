// Package kitchenriders publishes delivery requests for accepted delivery orders
// to the riders service over RabbitMQ.
package kitchenriders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const publishTimeout = 10 * time.Second

// Publisher is the part of *amqp091.Channel the dispatcher uses.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// DeliveryRequested is the message body consumed by the riders service.
type DeliveryRequested struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Address string          `json:"address"`
}

// Dispatcher implements ports.DeliveryDispatcher.
type Dispatcher struct {
	publisher  Publisher
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewDispatcher(publisher Publisher, exchange, routingKey string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		publisher:  publisher,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger.With("component", "kitchenriders"),
	}
}

// RequestDelivery publishes a persistent DeliveryRequested message.
func (d *Dispatcher) RequestDelivery(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, address string) error {
	body, err := json.Marshal(DeliveryRequested{
		OrderID: orderID.String(),
		Amount:  amount,
		Address: address,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = d.publisher.PublishWithContext(ctx, d.exchange, d.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    orderID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		d.logger.Error("delivery request publish failed",
			"order_id", orderID.String(),
			"exchange", d.exchange,
			"error", err,
		)
		return fmt.Errorf("publish delivery request: %w", err)
	}

	d.logger.Info("delivery requested", "order_id", orderID.String(), "routing_key", d.routingKey)
	return nil
}
