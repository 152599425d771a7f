package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"
)

// VehicleRepository reads fleet vehicle state.
type VehicleRepository interface {
	// GetStatuses returns the current status of each named vehicle.
	// Names without a fleet record are absent from the result.
	GetStatuses(ctx context.Context, names []string) (map[string]vehicle.Status, error)
}

// TripRepository reads active trip records.
type TripRepository interface {
	// ActiveTripRefs returns the subset of the given assignment row IDs
	// that an active trip references back to.
	ActiveTripRefs(ctx context.Context, assignmentIDs []kernel.UUID) (map[kernel.UUID]bool, error)
}
