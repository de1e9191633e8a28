package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is validated.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice or RequirePrice")

// Price is a non-negative amount of money.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice rejects negative amounts with a ValueIsInvalidError.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RequirePrice is NewPrice for optional input: a nil amount is a ValueIsRequiredError.
func RequirePrice(amount *decimal.Decimal) (Price, error) {
	if amount == nil {
		return Price{}, errs.NewValueIsRequiredError("price")
	}
	return NewPrice(*amount)
}

// MustNewPrice panics on invalid input. Intended for constants and tests.
func MustNewPrice(amount int64) Price {
	p, err := NewPrice(decimal.NewFromInt(amount))
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Times returns the amount multiplied by quantity. Quantity may be negative.
func (p Price) Times(quantity int64) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(quantity))
}

// Exceeds reports whether the price is strictly greater than total.
func (p Price) Exceeds(total decimal.Decimal) bool {
	return p.amount.GreaterThan(total)
}

// IsEqual compares amounts numerically, so 16000 equals 16000.00.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.StringFixed(2)
}
