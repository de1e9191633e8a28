package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Type is fixed at creation
//   - It has at least one line item, and line quantities satisfy the type's quantity rule
//   - A delivery order has a non-blank address
//   - An eat-in order references a table that was occupied when the order was created
//   - Status changes only through the transition methods, following Status
//
// The order table is referenced by identifier; releasing it on completion is
// the caller's job because it depends on the table's other orders.
type Order struct {
	id              kernel.UUID
	orderType       Type
	status          Status
	orderedAt       time.Time
	lineItems       []*LineItem
	deliveryAddress string
	orderTableID    *kernel.UUID
	guard           guard.ConstructorGuard
}

// NewOrder creates a Waiting order.
//
// Structural problems (identifier, type, empty or invalid lines, zero time) are
// reported together. The destination is then checked by the order type: an eat-in
// order needs an occupied table, a delivery order a non-blank address.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Delivery, lines,
//	    order.Destination{Address: "Gangnam-daero 1"}, time.Now().UTC())
func NewOrder(
	id kernel.UUID,
	orderType Type,
	lineItems []*LineItem,
	destination Destination,
	orderedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Waiting,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	if err := o.setLineItems(lineItems); err != nil {
		return nil, err
	}

	if err := orderType.validateDestination(destination); err != nil {
		return nil, err
	}

	switch orderType {
	case EatIn:
		tableID := destination.Table.ID()
		o.orderTableID = &tableID
	case Delivery:
		o.deliveryAddress = destination.Address
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order without re-checking its destination.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	orderedAt time.Time,
	lineItems []*LineItem,
	deliveryAddress string,
	orderTableID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setStatus(status),
		o.setOrderedAt(orderedAt),
		o.setOrderTableID(orderTableID),
	); err != nil {
		return nil, err
	}

	if err := o.setLineItems(lineItems); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// LineItems returns a copy of the line slice.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryAddress is empty unless the order is a delivery.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// OrderTableID is nil unless the order is eaten in.
func (o *Order) OrderTableID() *kernel.UUID {
	return o.orderTableID
}

// Amount is the sum of line amounts at their price snapshots.
func (o *Order) Amount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range o.lineItems {
		total = total.Add(li.Amount())
	}
	return total
}

// Accept moves a Waiting order to Accepted. Delivery orders are handed to a rider
// by the caller once accepted.
func (o *Order) Accept() error {
	return o.apply(o.status.Accept)
}

// Serve moves an Accepted order to Served.
func (o *Order) Serve() error {
	return o.apply(o.status.Serve)
}

// StartDelivery moves a Served delivery order to Delivering.
// Eat-in and takeout orders are never delivered.
func (o *Order) StartDelivery() error {
	if !o.orderType.IsDelivered() {
		return errs.NewIllegalStateErrorWithCause("type",
			fmt.Errorf("%s orders are not delivered", o.orderType))
	}
	return o.apply(o.status.StartDelivery)
}

// CompleteDelivery moves a Delivering order to Delivered.
func (o *Order) CompleteDelivery() error {
	return o.apply(o.status.CompleteDelivery)
}

// Complete moves the order to Completed: from Served for eat-in and takeout,
// from Delivered for delivery.
func (o *Order) Complete() error {
	return o.apply(func() (Status, error) {
		return o.status.Complete(o.orderType)
	})
}

func (o *Order) apply(transition func() (Status, error)) error {
	newStatus, err := transition()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("ordered at")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setOrderTableID(orderTableID *kernel.UUID) error {
	if orderTableID == nil {
		return nil
	}
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	id := *orderTableID
	o.orderTableID = &id
	return nil
}

// setLineItems needs the type to be set already.
func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("order line items", errors.New("at least one line item is required"))
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
		if err := o.orderType.ValidateLineQuantity(li.Quantity()); err != nil {
			return err
		}
	}

	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
