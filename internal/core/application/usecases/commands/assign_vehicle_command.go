package commands

import (
	"errors"

	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand allocates a vehicle (or sub-contracted
// transporter) to an order's cargo. Keyed by the cargo reference: an
// existing assignment row for the reference is overwritten, otherwise a
// new row is inserted under the given parent document.
type AssignVehicleCommand struct {
	cargoRef string
	details  transportorder.AssignmentDetails

	// parentDoctype/parentDocname locate the document a newly inserted
	// row hangs under. Unused on the update path.
	parentDoctype string
	parentDocname string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates the command. The cargo reference is
// the deduplication key and must be present.
func NewAssignVehicleCommand(
	cargoRef string,
	details transportorder.AssignmentDetails,
	parentDoctype, parentDocname string,
) (AssignVehicleCommand, error) {
	if cargoRef == "" {
		return AssignVehicleCommand{}, errs.NewValueIsRequiredError("cargo reference")
	}

	return AssignVehicleCommand{
		cargoRef:      cargoRef,
		details:       details,
		parentDoctype: parentDoctype,
		parentDocname: parentDocname,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// CargoRef returns the cargo reference the assignment is keyed by.
func (c AssignVehicleCommand) CargoRef() string {
	return c.cargoRef
}

// Details returns the assignment fields to apply.
func (c AssignVehicleCommand) Details() transportorder.AssignmentDetails {
	return c.details
}

// ParentDoctype returns the parent document type for a new row.
func (c AssignVehicleCommand) ParentDoctype() string {
	return c.parentDoctype
}

// ParentDocname returns the parent document name for a new row.
func (c AssignVehicleCommand) ParentDocname() string {
	return c.parentDocname
}
