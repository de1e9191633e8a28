package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Waiting ──> Accepted ──> Served ──┬──────────────────────────────> Completed   (eat-in, takeout)
//	                                  └──> Delivering ──> Delivered ──> Completed   (delivery)
//
// Completed is terminal. Every transition method fails with an IllegalStateError
// when called from a status it does not start from, so repeating a transition fails.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Waiting
	Accepted
	Served
	Delivering
	Delivered
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used on the wire, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCompleted reports whether the status is terminal.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// Accept transitions Waiting to Accepted.
func (s Status) Accept() (Status, error) {
	return s.transition(Waiting, Accepted, "accept")
}

// Serve transitions Accepted to Served.
func (s Status) Serve() (Status, error) {
	return s.transition(Accepted, Served, "serve")
}

// StartDelivery transitions Served to Delivering. The order type is checked by Order.
func (s Status) StartDelivery() (Status, error) {
	return s.transition(Served, Delivering, "start delivery")
}

// CompleteDelivery transitions Delivering to Delivered.
func (s Status) CompleteDelivery() (Status, error) {
	return s.transition(Delivering, Delivered, "complete delivery")
}

// Complete transitions to Completed from the status the order type completes from:
// Served for eat-in and takeout, Delivered for delivery.
func (s Status) Complete(orderType Type) (Status, error) {
	p, err := orderType.policy()
	if err != nil {
		return 0, err
	}
	return s.transition(p.completableFrom, Completed, "complete")
}

func (s Status) transition(from Status, to Status, action string) (Status, error) {
	if s != from {
		return 0, errs.NewIllegalStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to %s", s.String(), action),
		)
	}
	return to, nil
}
