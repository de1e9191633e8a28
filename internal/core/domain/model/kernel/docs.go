// Package kernel holds the value objects shared by every aggregate of the point-of-sale domain.
//
// The package includes:
//   - UUID: identifier of products, menus, menu groups, order tables and orders
//   - Price: a non-negative decimal amount of money
//   - DisplayName: a non-blank name that passed a ContentPolicy check
//
// All values are immutable and must be created through their constructors;
// a zero value fails Validate.
package kernel
