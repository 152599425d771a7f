package transportorder

import (
	"errors"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment")

// AssignmentDetails is the block of assignment fields the vehicle
// assignment endpoint is allowed to overwrite on an existing row. Keeping
// them in one value makes the mutable surface explicit: everything else
// on the row (currency, invoice link, created trip, item) is written by
// other parts of the lifecycle and survives a re-assignment untouched.
type AssignmentDetails struct {
	TransporterType TransporterType

	// Fleet references, meaningful for In House rows.
	AssignedVehicle string
	AssignedTrailer string
	AssignedDriver  string

	// Free-text transporter fields, meaningful for Sub-Contractor rows.
	SubContractor      string
	VehiclePlateNumber string
	TrailerPlateNumber string
	DriverName         string
	PassportNumber     string

	ContainerNumber     string
	Amount              float64
	Units               float64
	Route               string
	ExpectedLoadingDate *time.Time

	// Idx is the row's ordering position within the order.
	Idx int
}

// Assignment is a child row of a TransportOrder: one vehicle or
// sub-contracted transporter allocated to the order's cargo.
type Assignment struct {
	id       kernel.UUID
	cargoRef string

	// currency is stamped from the customer's default currency on every
	// order save.
	currency string

	// item is the billable item code used when the row is invoiced.
	item string

	// createdTrip is the name of the trip record once the row is dispatched.
	createdTrip string

	// invoice is the name of the invoice the row was billed on.
	invoice string

	details AssignmentDetails

	isConstructed bool
}

// NewAssignment creates an assignment row keyed by its cargo reference.
// The cargo reference is the deduplication key the assignment endpoint
// uses for its create-or-update decision.
func NewAssignment(id kernel.UUID, cargoRef string, details AssignmentDetails) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if cargoRef == "" {
		return nil, errs.NewValueIsRequiredError("cargo reference")
	}

	return &Assignment{
		id:            id,
		cargoRef:      cargoRef,
		details:       details,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an assignment row from persistence,
// including the lifecycle fields outside the mutable details block.
func RestoreAssignment(
	id kernel.UUID,
	cargoRef, currency, item, createdTrip, invoice string,
	details AssignmentDetails,
) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if cargoRef == "" {
		return nil, errs.NewValueIsRequiredError("cargo reference")
	}

	return &Assignment{
		id:            id,
		cargoRef:      cargoRef,
		currency:      currency,
		item:          item,
		createdTrip:   createdTrip,
		invoice:       invoice,
		details:       details,
		isConstructed: true,
	}, nil
}

// Validate ensures the row was built through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the row's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// CargoRef returns the cargo reference the row is keyed by.
func (a *Assignment) CargoRef() string {
	return a.cargoRef
}

// Currency returns the currency stamped onto the row.
func (a *Assignment) Currency() string {
	return a.currency
}

// Item returns the billable item code for invoicing.
func (a *Assignment) Item() string {
	return a.item
}

// CreatedTrip returns the trip record created for the row, if any.
func (a *Assignment) CreatedTrip() string {
	return a.createdTrip
}

// Invoice returns the name of the invoice the row was billed on, if any.
func (a *Assignment) Invoice() string {
	return a.invoice
}

// Details returns the mutable assignment fields.
func (a *Assignment) Details() AssignmentDetails {
	return a.details
}

// UpdateDetails overwrites the mutable field block. This is the whole
// whitelist the assignment endpoint may touch on an existing row.
func (a *Assignment) UpdateDetails(details AssignmentDetails) {
	a.details = details
}

// StampCurrency overwrites the row's currency. Unconditional: an already
// stamped currency is replaced as well.
func (a *Assignment) StampCurrency(currency string) {
	a.currency = currency
}

// LinkInvoice records the invoice the row was billed on.
func (a *Assignment) LinkInvoice(invoiceName string) {
	a.invoice = invoiceName
}
