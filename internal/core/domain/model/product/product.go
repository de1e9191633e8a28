// Package product holds the Product aggregate: something the kitchen sells at a price.
package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is an item with a guest-facing name and a non-negative price.
// Menus reference products by identifier and keep their own price snapshot.
type Product struct {
	id    kernel.UUID
	name  kernel.DisplayName
	price kernel.Price
	guard guard.ConstructorGuard
}

// NewProduct creates a product. The name must already have passed the content policy.
func NewProduct(id kernel.UUID, name kernel.DisplayName, price kernel.Price) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(id kernel.UUID, name kernel.DisplayName, price kernel.Price) (*Product, error) {
	return NewProduct(id, name, price)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() kernel.DisplayName {
	return p.name
}

func (p *Product) Price() kernel.Price {
	return p.price
}

// ChangePrice replaces the price. Menus containing the product are repriced separately.
func (p *Product) ChangePrice(price kernel.Price) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name kernel.DisplayName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
