package services

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"
)

// MenuLine is a requested menu line before it is priced.
type MenuLine struct {
	ProductID kernel.UUID
	Quantity  int64
}

// MenuComposer turns requested lines into menu lines priced at the current product prices.
type MenuComposer struct{}

func NewMenuComposer() MenuComposer {
	return MenuComposer{}
}

// Compose fails with a ValueIsInvalidError when lines is empty, when a quantity is
// negative or when a requested product is not among products.
func (MenuComposer) Compose(lines []MenuLine, products []*product.Product) ([]*menu.MenuProduct, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("menu products", errors.New("at least one product is required"))
	}

	for _, line := range lines {
		if line.Quantity < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", line.Quantity))
		}
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	result := make([]*menu.MenuProduct, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu products",
				fmt.Errorf("product %s does not exist", line.ProductID))
		}

		mp, err := menu.NewMenuProduct(kernel.NewUUID(), p.ID(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		result = append(result, mp)
	}

	return result, nil
}
