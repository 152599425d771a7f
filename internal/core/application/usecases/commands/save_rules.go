package commands

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/domain/services"
	"transport/internal/pkg/errs"
)

// applySaveRules runs the save pipeline every order persist goes
// through, in order: stamp the customer's default currency onto the
// assignment rows, guard against double-booking a dispatched vehicle,
// re-derive the assignment status. A guard rejection aborts the save.
func applySaveRules(ctx context.Context, uow LifecycleUoW, order *transportorder.TransportOrder) error {
	if customerName := order.Customer(); customerName != "" {
		customer, err := uow.CustomerRepository().Get(ctx, customerName)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// No customer record, so no default currency to stamp.
		case err != nil:
			return err
		default:
			order.StampCurrency(customer.DefaultCurrency)
		}
	}

	rowIDs := make([]kernel.UUID, 0, len(order.Assignments()))
	var vehicleNames []string
	for _, row := range order.Assignments() {
		rowIDs = append(rowIDs, row.ID())
		if name := row.Details().AssignedVehicle; name != "" {
			vehicleNames = append(vehicleNames, name)
		}
	}

	if len(vehicleNames) > 0 {
		statuses, err := uow.VehicleRepository().GetStatuses(ctx, vehicleNames)
		if err != nil {
			return err
		}

		tripRefs, err := uow.TripRepository().ActiveTripRefs(ctx, rowIDs)
		if err != nil {
			return err
		}

		if err = services.NewDispatchGuard().Check(order, statuses, tripRefs); err != nil {
			return err
		}
	}

	order.RecalculateAssignmentStatus()
	return nil
}
