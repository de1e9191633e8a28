// Package ordertable holds OrderTable, a dining table guests are seated at.
//
// A table is occupied while guests sit at it and is released when its eat-in
// orders are completed. Orders reference tables by identifier only.
package ordertable

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable")

type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	occupied       bool
	guard          guard.ConstructorGuard
}

// NewOrderTable creates an empty, unoccupied table.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	return RestoreOrderTable(id, name, 0, false)
}

func RestoreOrderTable(id kernel.UUID, name string, numberOfGuests int, occupied bool) (*OrderTable, error) {
	t := &OrderTable{
		occupied: occupied,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

func (t *OrderTable) Name() string {
	return t.name
}

func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Sit marks the table occupied.
func (t *OrderTable) Sit() {
	t.occupied = true
}

// Clear resets the table to no guests and unoccupied. Whether the table may be
// cleared depends on its orders and is decided by the caller.
func (t *OrderTable) Clear() {
	t.numberOfGuests = 0
	t.occupied = false
}

// ChangeNumberOfGuests fails with a ValueIsInvalidError for a negative count and
// with an IllegalStateError when nobody is seated.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests",
			fmt.Errorf("%d is negative", numberOfGuests))
	}
	if !t.occupied {
		return errs.NewIllegalStateError("order table is not occupied")
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *OrderTable) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests",
			fmt.Errorf("%d is negative", numberOfGuests))
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
