package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryDispatcher hands accepted delivery orders to the riders service.
type DeliveryDispatcher interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, address string) error
}
