// Package services provides domain services for rules that span several aggregates
// of the point of sale.
//
// The package includes:
//   - MenuComposer: builds menu lines from requested products and their current prices
//   - OrderLineResolver: checks requested order lines against the menus they reference
//   - MenuRepricer: propagates a product price change to the menus containing it
//
// Services are stateless and work on aggregates already loaded by the caller.
package services
