package services

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/domain/model/vehicle"
)

// ErrVehicleBusy is returned when an assignment row names a vehicle that
// is dispatched on a trip belonging to a different order.
var ErrVehicleBusy = errors.New("vehicle is in trip")

// DispatchGuard enforces the double-booking rule: a vehicle whose fleet
// status is "In Trip" may only stay assigned when an active trip already
// points back at that exact assignment row. The guard is pure; callers
// pre-fetch the vehicle statuses and trip back-references it needs.
type DispatchGuard struct{}

// NewDispatchGuard creates the guard service.
func NewDispatchGuard() *DispatchGuard {
	return &DispatchGuard{}
}

// Check inspects every assignment row of the order that names a fleet
// vehicle. vehicleStatus maps vehicle name to its current fleet status;
// names missing from the map are treated as not dispatched. tripBackRefs
// is the set of assignment row IDs an active trip references.
//
// Returns an error wrapping ErrVehicleBusy, naming the vehicle, on the
// first row that would double-book; nil when the order may be saved.
func (g *DispatchGuard) Check(
	order *transportorder.TransportOrder,
	vehicleStatus map[string]vehicle.Status,
	tripBackRefs map[kernel.UUID]bool,
) error {
	if err := order.Validate(); err != nil {
		return err
	}

	for _, row := range order.Assignments() {
		assigned := row.Details().AssignedVehicle
		if assigned == "" {
			continue
		}

		if vehicleStatus[assigned] != vehicle.InTrip {
			continue
		}

		// The trip back-reference marks the save that represents the
		// row's own legitimate dispatch.
		if tripBackRefs[row.ID()] {
			continue
		}

		return fmt.Errorf("vehicle %s is in trip: %w", assigned, ErrVehicleBusy)
	}

	return nil
}
