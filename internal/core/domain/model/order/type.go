package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

// Type is how an order reaches the guest. It is fixed when the order is created.
type Type int

const (
	UnknownType Type = iota
	EatIn
	Takeout
	Delivery
)

// Destination carries where an order goes. Only the part the order type needs is used:
// the table for eat-in, the address for delivery.
type Destination struct {
	Address string
	Table   *ordertable.OrderTable
}

// typePolicy holds the rules that differ between order types.
type typePolicy struct {
	name string
	// allowsNegativeQuantity keeps eat-in lines with a negative quantity.
	// Takeout and delivery reject them.
	allowsNegativeQuantity bool
	completableFrom        Status
	delivered              bool
	checkDestination       func(Destination) error
}

func getTypePolicies() map[Type]typePolicy {
	//nolint:exhaustive // UnknownType has no policy
	return map[Type]typePolicy{
		EatIn: {
			name:                   "EAT_IN",
			allowsNegativeQuantity: true,
			completableFrom:        Served,
			checkDestination:       checkTable,
		},
		Takeout: {
			name:             "TAKEOUT",
			completableFrom:  Served,
			checkDestination: func(Destination) error { return nil },
		},
		Delivery: {
			name:             "DELIVERY",
			completableFrom:  Delivered,
			delivered:        true,
			checkDestination: checkAddress,
		},
	}
}

// ParseType reads the wire name of an order type.
func ParseType(s string) (Type, error) {
	if strings.TrimSpace(s) == "" {
		return UnknownType, errs.NewValueIsRequiredError("type")
	}
	for t, p := range getTypePolicies() {
		if p.name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%s is not a valid order type", s))
}

func (t Type) Validate() error {
	_, err := t.policy()
	return err
}

func (t Type) String() string {
	if p, ok := getTypePolicies()[t]; ok {
		return p.name
	}
	return "UNKNOWN"
}

// IsDelivered reports whether orders of this type leave with a rider.
func (t Type) IsDelivered() bool {
	p, err := t.policy()
	return err == nil && p.delivered
}

// ValidateLineQuantity checks a line quantity against the rule of the type.
func (t Type) ValidateLineQuantity(quantity int64) error {
	p, err := t.policy()
	if err != nil {
		return err
	}
	if quantity < 0 && !p.allowsNegativeQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative for a %s order", quantity, p.name))
	}
	return nil
}

func (t Type) validateDestination(d Destination) error {
	p, err := t.policy()
	if err != nil {
		return err
	}
	return p.checkDestination(d)
}

func (t Type) policy() (typePolicy, error) {
	p, ok := getTypePolicies()[t]
	if !ok {
		return typePolicy{}, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return p, nil
}

func checkTable(d Destination) error {
	if d.Table == nil {
		return errs.NewValueIsRequiredError("order table")
	}
	if err := d.Table.Validate(); err != nil {
		return err
	}
	if !d.Table.IsOccupied() {
		return errs.NewIllegalStateErrorWithCause("order table",
			errors.New("an eat-in order needs an occupied table"))
	}
	return nil
}

func checkAddress(d Destination) error {
	if strings.TrimSpace(d.Address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	return nil
}
