// Package kernel provides the shared value objects of the mango shop domain.
//
// The package includes:
//   - UUID: identifier for orders and customers, with order number short codes
//   - Money: non-negative dollar amounts backed by shopspring/decimal
//
// Both are immutable and safe for concurrent use.
package kernel
