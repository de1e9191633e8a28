package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct")

// MenuProduct is a menu line: a product reference, a quantity and the product's
// price at the time the line was built. It is owned by exactly one Menu.
type MenuProduct struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int64
	price     kernel.Price
	guard     guard.ConstructorGuard
}

func NewMenuProduct(id kernel.UUID, productID kernel.UUID, quantity int64, price kernel.Price) (*MenuProduct, error) {
	mp := &MenuProduct{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mp.setID(id),
		mp.setProductID(productID),
		mp.setQuantity(quantity),
		mp.setPrice(price),
	); err != nil {
		return nil, err
	}

	return mp, nil
}

func (mp *MenuProduct) Validate() error {
	if mp == nil {
		return ErrMenuProductIsNotConstructed
	}
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

func (mp *MenuProduct) ID() kernel.UUID {
	return mp.id
}

func (mp *MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

func (mp *MenuProduct) Quantity() int64 {
	return mp.quantity
}

// Price is the product price snapshot.
func (mp *MenuProduct) Price() kernel.Price {
	return mp.price
}

// Amount is price times quantity.
func (mp *MenuProduct) Amount() decimal.Decimal {
	return mp.price.Times(mp.quantity)
}

func (mp *MenuProduct) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	mp.id = id
	return nil
}

func (mp *MenuProduct) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	mp.productID = productID
	return nil
}

func (mp *MenuProduct) setQuantity(quantity int64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	mp.quantity = quantity
	return nil
}

func (mp *MenuProduct) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	mp.price = price
	return nil
}
