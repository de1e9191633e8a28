package kernel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrDisplayNameIsNotConstructed is returned when a zero-value DisplayName is validated.
var ErrDisplayNameIsNotConstructed = errs.NewValueIsRequiredError("display name must be created via NewDisplayName")

// ContentPolicy reports whether a text contains content that must not be shown to guests.
type ContentPolicy interface {
	ContainsDisallowedContent(ctx context.Context, text string) (bool, error)
}

// ContentPolicyFunc adapts a function to ContentPolicy.
type ContentPolicyFunc func(ctx context.Context, text string) (bool, error)

func (f ContentPolicyFunc) ContainsDisallowedContent(ctx context.Context, text string) (bool, error) {
	return f(ctx, text)
}

// DisplayName is a name shown to guests: non-blank and accepted by a ContentPolicy.
type DisplayName struct {
	value string
	guard guard.ConstructorGuard
}

// NewDisplayName checks value against policy. Blank values are rejected as missing,
// disallowed content as invalid. A policy failure is returned wrapped and unclassified.
func NewDisplayName(ctx context.Context, value string, policy ContentPolicy) (DisplayName, error) {
	if strings.TrimSpace(value) == "" {
		return DisplayName{}, errs.NewValueIsRequiredError("name")
	}
	if policy == nil {
		return DisplayName{}, errors.New("content policy is not configured")
	}

	disallowed, err := policy.ContainsDisallowedContent(ctx, value)
	if err != nil {
		return DisplayName{}, fmt.Errorf("check name content: %w", err)
	}
	if disallowed {
		return DisplayName{}, errs.NewValueIsInvalidErrorWithCause("name",
			errors.New("contains disallowed content"))
	}

	return DisplayName{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreDisplayName rebuilds a name that was checked before it was stored.
func RestoreDisplayName(value string) DisplayName {
	return DisplayName{
		value: value,
		guard: guard.NewConstructorGuard(),
	}
}

func (n DisplayName) Validate() error {
	return n.guard.Validate(ErrDisplayNameIsNotConstructed)
}

func (n DisplayName) String() string {
	return n.value
}
