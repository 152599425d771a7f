// Package transportorder provides the TransportOrder aggregate and its
// child rows for the freight order lifecycle.
//
// The package includes:
//   - TransportOrder: the aggregate root owning cargo lines and
//     assignment rows, with the save-time lifecycle behavior (currency
//     stamping, assignment-status derivation)
//   - Assignment: one allocated vehicle or sub-contracted transporter,
//     keyed by its cargo reference
//   - CargoLine: one unit of cargo, matched against assignments by
//     container number
//   - CargoType / AssignmentStatus / TransporterType value objects
//   - OwnershipMode: where an order's child rows are anchored, resolved
//     once per order
//
// Key rules:
//   - An order with no assignment rows is Waiting Assignment
//   - Container orders compare cargo line container numbers against the
//     assigned containers; loose cargo orders compare the assigned amount
//     sum against the order amount
//   - Every assignment row's currency equals the customer's default
//     currency once known; stamping overwrites unconditionally
//   - The status is recomputed from the child rows on every save and
//     never persisted independently of that computation
package transportorder
