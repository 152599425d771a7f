// Package services contains stateless domain services that implement
// business rules spanning more than one aggregate.
//
// DispatchGuard decides whether an order's vehicle assignments would
// double-book a dispatched vehicle. It works on pre-fetched fleet state
// so the rule itself stays pure and unit-testable.
package services
