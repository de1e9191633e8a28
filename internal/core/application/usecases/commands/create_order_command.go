package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineRequest is a requested order line as it arrives from a caller.
type OrderLineRequest struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    *decimal.Decimal
}

// CreateOrderCommand represents a request to place an order.
//
// Example:
//
//	price := decimal.NewFromInt(16000)
//	cmd, err := NewCreateOrderCommand("DELIVERY",
//	    []OrderLineRequest{{MenuID: menuID, Quantity: 1, Price: &price}},
//	    nil, "Gangnam-daero 1")
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType       order.Type
	lines           []services.OrderLine
	orderTableID    *kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand fails when the type is missing or unknown, when there are no
// lines or when a line has no menu or no price. Everything that depends on stored
// menus and tables is checked by the handler.
func NewCreateOrderCommand(
	orderType string,
	lines []OrderLineRequest,
	orderTableID *kernel.UUID,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderTableID:    orderTableID,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setType(orderType); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := cmd.setLines(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Type() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) Lines() []services.OrderLine {
	lines := make([]services.OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// MenuIDs lists the distinct menus referenced by the lines.
func (c CreateOrderCommand) MenuIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.MenuID]; ok {
			continue
		}
		seen[line.MenuID] = struct{}{}
		ids = append(ids, line.MenuID)
	}
	return ids
}

func (c CreateOrderCommand) OrderTableID() *kernel.UUID {
	return c.orderTableID
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setType(orderType string) error {
	t, err := order.ParseType(orderType)
	if err != nil {
		return err
	}
	c.orderType = t
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("order line items", errors.New("at least one line item is required"))
	}

	result := make([]services.OrderLine, 0, len(lines))
	for i, line := range lines {
		if err := line.MenuID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("order line items[%d].menuId", i), err)
		}

		price, err := kernel.RequirePrice(line.Price)
		if err != nil {
			return err
		}

		result = append(result, services.OrderLine{
			MenuID:   line.MenuID,
			Quantity: line.Quantity,
			Price:    price,
		})
	}

	c.lines = result
	return nil
}
