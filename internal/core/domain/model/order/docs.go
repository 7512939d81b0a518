// Package order provides the Order aggregate of the shop: a priced, paid set of mango
// boxes travelling to an airport pickup point or a doorstep address.
//
// The package includes:
//   - Order: The aggregate root that owns identity, destination, priced lines and lifecycle
//   - Destination: Pickup (airport) or doorstep (address, region, zip) target
//   - Item: A priced order line
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders start in Processing once the quote was accepted and paid
//   - Status follows Processing -> Shipped -> Delivered, or Processing -> Cancelled
//   - Only the customer who placed an order may cancel it, and only while Processing
//   - The unit price is the order total split evenly over the boxes
//
// Whether an order is eligible for its delivery method, and what it costs, is decided
// by the delivery engine in the services package before an Order is built.
package order
