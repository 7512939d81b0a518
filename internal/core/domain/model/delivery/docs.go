// Package delivery provides the value objects shared by the delivery eligibility and
// pricing engine and the order aggregate.
//
// The package includes:
//   - ItemType: the four mango varieties the shop sells
//   - Method: pickup at an airport or doorstep delivery
//   - LineItem: a validated (item type, quantity) pair
//   - Quote: the verdict of the engine, either valid with a price or invalid with a reason
//
// Rule violations are values, not errors: an invalid Quote carries a human readable
// reason and a zero price so callers cannot forget to handle the invalid case.
package delivery
