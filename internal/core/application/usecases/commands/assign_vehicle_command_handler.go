package commands

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"
)

// AssignVehicleSucceeded is returned by both the create and the update
// branch. Callers cannot tell from the return value which branch ran;
// that is the endpoint's documented contract.
const AssignVehicleSucceeded = "success"

// assignmentParentField is the child-table field assignment rows hang
// under on their parent document.
const assignmentParentField = "assign_transport"

// AssignVehicleCommandHandler implements the create-or-update vehicle
// assignment endpoint. An existing row keyed by the cargo reference is
// overwritten and the owning order is fully resaved, running the order
// save rules. A missing row is inserted as a bare child of the given
// parent document.
type AssignVehicleCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewAssignVehicleCommandHandler creates the handler.
func NewAssignVehicleCommandHandler(uowFactory LifecycleUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the assignment. Calling it twice with the same cargo
// reference updates the single existing row rather than creating a
// duplicate; both calls return AssignVehicleSucceeded.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.TransportOrderRepository()

	order, err := orderRepo.GetByCargoRef(ctx, cmd.CargoRef())
	switch {
	case err == nil:
		row, ok := order.AssignmentByCargoRef(cmd.CargoRef())
		if !ok {
			return "", errs.NewObjectNotFoundError("cargo reference", cmd.CargoRef())
		}
		row.UpdateDetails(cmd.Details())

		if err = applySaveRules(ctx, uow, order); err != nil {
			return "", err
		}
		if err = orderRepo.Update(ctx, order); err != nil {
			return "", err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		if cmd.ParentDoctype() == "" || cmd.ParentDocname() == "" {
			return "", errs.NewValueIsRequiredError("assignment parent reference")
		}

		var row *transportorder.Assignment
		row, err = transportorder.NewAssignment(kernel.NewUUID(), cmd.CargoRef(), cmd.Details())
		if err != nil {
			return "", err
		}

		if err = orderRepo.AddAssignment(ctx,
			cmd.ParentDoctype(), cmd.ParentDocname(), assignmentParentField, row); err != nil {
			return "", err
		}

	default:
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return AssignVehicleSucceeded, nil
}
