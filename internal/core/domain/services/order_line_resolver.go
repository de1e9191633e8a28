package services

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// OrderLine is a requested order line with the menu price the guest was shown.
type OrderLine struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Price
}

// OrderLineResolver checks requested order lines against the menus they reference
// and builds the order line items.
//
// Checks run in this order, so the first failing rule decides the error:
//   - at least one line (invalid argument)
//   - every menu exists (invalid argument)
//   - per line: the quantity rule of the order type (invalid argument),
//     the menu is displayed (illegal state), the price equals the menu price (invalid argument)
type OrderLineResolver struct{}

func NewOrderLineResolver() OrderLineResolver {
	return OrderLineResolver{}
}

func (OrderLineResolver) Resolve(orderType order.Type, lines []OrderLine, menus []*menu.Menu) ([]*order.LineItem, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order line items", errors.New("at least one line item is required"))
	}

	byID := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byID[m.ID()] = m
	}

	for _, line := range lines {
		if _, ok := byID[line.MenuID]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("order line items",
				fmt.Errorf("menu %s does not exist", line.MenuID))
		}
	}

	items := make([]*order.LineItem, 0, len(lines))
	for _, line := range lines {
		m := byID[line.MenuID]

		if err := orderType.ValidateLineQuantity(line.Quantity); err != nil {
			return nil, err
		}
		if !m.IsDisplayed() {
			return nil, errs.NewIllegalStateErrorWithCause("menu",
				fmt.Errorf("menu %s is not displayed", m.ID()))
		}
		if !m.Price().IsEqual(line.Price) {
			return nil, errs.NewValueIsInvalidErrorWithCause("price",
				fmt.Errorf("%s does not match menu price %s", line.Price, m.Price()))
		}

		item, err := order.NewLineItem(kernel.NewUUID(), m.ID(), line.Quantity, m.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
