// Package menu holds the Menu aggregate and its MenuProduct lines.
//
// A menu bundles products at a price of its own. The central invariant is
//
//	price <= sum(line price snapshot * line quantity)
//
// It is enforced when a menu is created or repriced (violations are rejected as
// invalid arguments) and when a menu is displayed (violations are an illegal state).
// Product prices may drift after a menu was built; RepriceProduct refreshes the
// affected snapshots and hides the menu if it no longer satisfies the invariant.
package menu
