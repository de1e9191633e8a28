// Package order implements the order lifecycle of the point of sale.
//
// The package includes:
//   - Order: the aggregate root, created Waiting and moved through its lifecycle
//   - LineItem: a menu reference with a quantity and a frozen menu price
//   - Status: the lifecycle state machine
//   - Type: eat-in, takeout or delivery, each with its own rule set
//
// Key business rules:
//   - Waiting -> Accepted -> Served -> Completed for eat-in and takeout orders
//   - Waiting -> Accepted -> Served -> Delivering -> Delivered -> Completed for delivery orders
//   - Repeating a transition or skipping a step fails with an illegal state error
//   - Eat-in orders keep lines with a negative quantity; takeout and delivery reject them
//   - Delivery orders need an address, eat-in orders an occupied table
package order
