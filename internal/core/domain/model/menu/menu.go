package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

// Menu is the aggregate root for a priced bundle of products.
//
// The menu group is referenced by identifier only; groups outlive the menus filed under them.
type Menu struct {
	id          kernel.UUID
	name        kernel.DisplayName
	price       kernel.Price
	displayed   bool
	menuGroupID kernel.UUID
	products    []*MenuProduct
	guard       guard.ConstructorGuard
}

// NewMenu creates a menu. It fails with a ValueIsInvalidError when products is empty
// or when price exceeds the products total.
func NewMenu(
	id kernel.UUID,
	name kernel.DisplayName,
	price kernel.Price,
	displayed bool,
	menuGroupID kernel.UUID,
	products []*MenuProduct,
) (*Menu, error) {
	m, err := RestoreMenu(id, name, price, displayed, menuGroupID, products)
	if err != nil {
		return nil, err
	}

	if err = m.checkPrice(price); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu rebuilds a stored menu. The price invariant is not re-checked:
// a stored menu may be overpriced and hidden after a product price change.
func RestoreMenu(
	id kernel.UUID,
	name kernel.DisplayName,
	price kernel.Price,
	displayed bool,
	menuGroupID kernel.UUID,
	products []*MenuProduct,
) (*Menu, error) {
	m := &Menu{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setProducts(products),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() kernel.DisplayName {
	return m.name
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// Products returns the menu lines. The slice is a copy; the lines are shared.
func (m *Menu) Products() []*MenuProduct {
	products := make([]*MenuProduct, len(m.products))
	copy(products, m.products)
	return products
}

// ProductsTotal is the sum of line amounts over the current snapshots.
func (m *Menu) ProductsTotal() decimal.Decimal {
	return ProductsTotal(m.products)
}

// IsOverpriced reports whether the menu price exceeds its products total.
func (m *Menu) IsOverpriced() bool {
	return m.price.Exceeds(m.ProductsTotal())
}

// ChangePrice sets a new price, checked against the existing line snapshots.
func (m *Menu) ChangePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if err := m.checkPrice(price); err != nil {
		return err
	}

	m.price = price
	return nil
}

// Display makes the menu orderable. An overpriced menu stays hidden and
// the call fails with an IllegalStateError.
func (m *Menu) Display() error {
	if m.IsOverpriced() {
		return errs.NewIllegalStateErrorWithCause("menu",
			fmt.Errorf("price %s exceeds products total %s", m.price, m.ProductsTotal().StringFixed(2)))
	}

	m.displayed = true
	return nil
}

// Hide always succeeds.
func (m *Menu) Hide() {
	m.displayed = false
}

// RepriceProduct refreshes the snapshot of every line referencing productID and
// hides the menu if it became overpriced. It reports whether the menu was hidden by the call.
func (m *Menu) RepriceProduct(productID kernel.UUID, price kernel.Price) (bool, error) {
	if err := price.Validate(); err != nil {
		return false, err
	}

	for _, mp := range m.products {
		if mp.productID.IsEqual(productID) {
			mp.price = price
		}
	}

	return m.HideIfOverpriced(), nil
}

// HideIfOverpriced hides a displayed overpriced menu and reports whether it did.
func (m *Menu) HideIfOverpriced() bool {
	if !m.displayed || !m.IsOverpriced() {
		return false
	}

	m.Hide()
	return true
}

func (m *Menu) checkPrice(price kernel.Price) error {
	return CheckPrice(price, m.products)
}

// ProductsTotal sums price times quantity over products.
func ProductsTotal(products []*MenuProduct) decimal.Decimal {
	total := decimal.Zero
	for _, mp := range products {
		total = total.Add(mp.Amount())
	}
	return total
}

// CheckPrice fails with a ValueIsInvalidError when price exceeds the products total.
func CheckPrice(price kernel.Price, products []*MenuProduct) error {
	total := ProductsTotal(products)
	if price.Exceeds(total) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s exceeds products total %s", price, total.StringFixed(2)))
	}
	return nil
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name kernel.DisplayName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setProducts(products []*MenuProduct) error {
	if len(products) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu products", errors.New("at least one product is required"))
	}

	for _, mp := range products {
		if err := mp.Validate(); err != nil {
			return err
		}
	}

	m.products = make([]*MenuProduct, len(products))
	copy(m.products, products)
	return nil
}
