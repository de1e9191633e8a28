package services

import (
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
)

// MenuRepricer refreshes the price snapshots of the menus containing a product
// after the product's price changed. Menus that become overpriced are hidden.
type MenuRepricer struct{}

func NewMenuRepricer() MenuRepricer {
	return MenuRepricer{}
}

// Reprice returns the menus hidden by the change. Menus not containing the product are left as they are.
func (MenuRepricer) Reprice(p *product.Product, menus []*menu.Menu) ([]*menu.Menu, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var hidden []*menu.Menu
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		wasHidden, err := m.RepriceProduct(p.ID(), p.Price())
		if err != nil {
			return nil, err
		}
		if wasHidden {
			hidden = append(hidden, m)
		}
	}

	return hidden, nil
}
