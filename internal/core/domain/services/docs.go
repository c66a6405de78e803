// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight marketplace. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RouteMatcher: matches customer enquiries against vendor routes and
//     aggregates segment pricing into price ranges
//   - PriceEstimator: computes the minimum expected price used to anchor
//     vendor quotations
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
