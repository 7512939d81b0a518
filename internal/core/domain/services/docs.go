// Package services provides the delivery eligibility and pricing engine of the shop.
//
// The package includes:
//   - PricingTables: static pickup and doorstep price lists
//   - OrderRuleValidator: delivery method specific eligibility rules
//   - DeliveryEngine: the entry point composing reference data, rules and prices
//
// All services are pure in-memory computations over immutable reference data. Rule
// violations are reported as invalid delivery.Quote values; only direct price lookups
// with bad input return errors.
package services
