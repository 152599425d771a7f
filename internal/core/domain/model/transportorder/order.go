package transportorder

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// Doctype is the document type label transport orders are referenced by
// from other records, e.g. as the parent of directly owned child rows.
const Doctype = "Transportation Order"

var (
	// ErrOrderIsNotConstructed is returned when a TransportOrder was not
	// created through NewTransportOrder or RestoreTransportOrder.
	ErrOrderIsNotConstructed = errors.New(
		"TransportOrder must be created via NewTransportOrder or RestoreTransportOrder")

	// ErrDuplicateCargoRef is returned when adding an assignment row whose
	// cargo reference is already present on the order.
	ErrDuplicateCargoRef = errors.New("assignment with this cargo reference already exists")
)

// OrderAttributes groups the descriptive order fields supplied by the
// caller at creation time. All of them are optional; orders created by
// the import sweep carry little more than the reference pair and the
// file number.
type OrderAttributes struct {
	RequestReceived         *time.Time
	Consignee               string
	Shipper                 string
	CargoLocationCountry    string
	CargoLocationCity       string
	CargoDestinationCountry string
	CargoDestinationCity    string
	TransportType           string

	// ReferenceDoctype and ReferenceDocname are the optional back-link to
	// the originating document, e.g. an import record.
	ReferenceDoctype string
	ReferenceDocname string

	// Company owns the order for reporting; used as the last fallback when
	// resolving the invoice naming abbreviation.
	Company string

	// DeptAbbr is an explicit override for the invoice naming abbreviation.
	DeptAbbr string
}

// TransportOrder is the aggregate root for a shipment's transport
// request. It owns the cargo lines and assignment rows and derives its
// assignment status from them on every save.
type TransportOrder struct {
	id         kernel.UUID
	fileNumber string
	customer   string
	cargoType  CargoType
	amount     float64

	assignmentStatus AssignmentStatus
	ownership        OwnershipMode
	attrs            OrderAttributes

	cargoLines  []*CargoLine
	assignments []*Assignment

	isConstructed bool
}

// NewTransportOrder creates an order in Waiting Assignment status.
// The file number is the order's natural key and must be present.
// Customer, cargo type and amount may be unset at creation; callers
// typically complete them later in the order's life.
func NewTransportOrder(
	id kernel.UUID,
	fileNumber, customer string,
	cargoType CargoType,
	amount float64,
	ownership OwnershipMode,
	attrs OrderAttributes,
) (*TransportOrder, error) {
	order := &TransportOrder{
		assignmentStatus: WaitingAssignment,
		ownership:        ownership,
		attrs:            attrs,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setFileNumber(fileNumber),
		order.setCargoType(cargoType),
		order.setAmount(amount),
	); err != nil {
		return nil, err
	}

	order.customer = customer
	return order, nil
}

// RestoreTransportOrder reconstructs an order from persistence together
// with its child rows.
func RestoreTransportOrder(
	id kernel.UUID,
	fileNumber, customer string,
	cargoType CargoType,
	amount float64,
	status AssignmentStatus,
	ownership OwnershipMode,
	attrs OrderAttributes,
	cargoLines []*CargoLine,
	assignments []*Assignment,
) (*TransportOrder, error) {
	order, err := NewTransportOrder(id, fileNumber, customer, cargoType, amount, ownership, attrs)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.assignmentStatus = status

	for _, line := range cargoLines {
		if err = order.AddCargoLine(line); err != nil {
			return nil, err
		}
	}
	for _, assignment := range assignments {
		if err = order.AddAssignment(assignment); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the order was built through a constructor.
func (o *TransportOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *TransportOrder) IsEqual(other *TransportOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *TransportOrder) ID() kernel.UUID {
	return o.id
}

// FileNumber returns the order's natural key.
func (o *TransportOrder) FileNumber() string {
	return o.fileNumber
}

// Customer returns the customer reference, empty when not yet known.
func (o *TransportOrder) Customer() string {
	return o.customer
}

// CargoType returns the order's cargo type; CargoTypeUnknown when unset.
func (o *TransportOrder) CargoType() CargoType {
	return o.cargoType
}

// Amount returns the order's total amount.
func (o *TransportOrder) Amount() float64 {
	return o.amount
}

// AssignmentStatus returns the derived assignment coverage status.
func (o *TransportOrder) AssignmentStatus() AssignmentStatus {
	return o.assignmentStatus
}

// Ownership returns where the order's child rows are anchored.
func (o *TransportOrder) Ownership() OwnershipMode {
	return o.ownership
}

// Attributes returns the descriptive order fields.
func (o *TransportOrder) Attributes() OrderAttributes {
	return o.attrs
}

// CargoLines returns the order's cargo lines.
func (o *TransportOrder) CargoLines() []*CargoLine {
	return o.cargoLines
}

// Assignments returns the order's assignment rows.
func (o *TransportOrder) Assignments() []*Assignment {
	return o.assignments
}

// AssignmentByCargoRef finds the assignment row keyed by the given cargo
// reference.
func (o *TransportOrder) AssignmentByCargoRef(cargoRef string) (*Assignment, bool) {
	for _, a := range o.assignments {
		if a.CargoRef() == cargoRef {
			return a, true
		}
	}
	return nil, false
}

// AddCargoLine appends a cargo line to the order.
func (o *TransportOrder) AddCargoLine(line *CargoLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	o.cargoLines = append(o.cargoLines, line)
	return nil
}

// AddAssignment appends an assignment row. Rows are keyed by cargo
// reference, so a duplicate reference is rejected.
func (o *TransportOrder) AddAssignment(assignment *Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}
	if _, exists := o.AssignmentByCargoRef(assignment.CargoRef()); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCargoRef, assignment.CargoRef())
	}
	o.assignments = append(o.assignments, assignment)
	return nil
}

// StampCurrency overwrites the currency on every assignment row with the
// customer's default currency. A blank currency means the customer has
// no resolvable default and leaves the rows untouched.
func (o *TransportOrder) StampCurrency(currency string) {
	if currency == "" {
		return
	}
	for _, a := range o.assignments {
		a.StampCurrency(currency)
	}
}

// RecalculateAssignmentStatus re-derives the assignment status from the
// current child rows. The status is a pure function of the rows and the
// cargo type; nothing else may write it.
func (o *TransportOrder) RecalculateAssignmentStatus() {
	if len(o.assignments) == 0 {
		o.assignmentStatus = WaitingAssignment
		return
	}

	switch o.cargoType {
	case Container:
		assigned := make(map[string]bool, len(o.assignments))
		for _, a := range o.assignments {
			assigned[a.Details().ContainerNumber] = true
		}
		// Each cargo line overwrites the status, so the stored value
		// reflects only the last line evaluated. Regression-tested; an
		// all-lines aggregate would be a product change.
		for _, line := range o.cargoLines {
			if assigned[line.ContainerNumber()] {
				o.assignmentStatus = FullyAssigned
			} else {
				o.assignmentStatus = PartiallyAssigned
			}
		}

	case LooseCargo:
		var totalAssigned float64
		for _, a := range o.assignments {
			totalAssigned += a.Details().Amount
		}
		if totalAssigned >= o.amount {
			o.assignmentStatus = FullyAssigned
		} else {
			o.assignmentStatus = PartiallyAssigned
		}
	}
}

func (o *TransportOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *TransportOrder) setFileNumber(fileNumber string) error {
	if fileNumber == "" {
		return errs.NewValueIsRequiredError("file number")
	}
	o.fileNumber = fileNumber
	return nil
}

func (o *TransportOrder) setCargoType(cargoType CargoType) error {
	if cargoType != CargoTypeUnknown {
		if err := cargoType.Validate(); err != nil {
			return err
		}
	}
	o.cargoType = cargoType
	return nil
}

func (o *TransportOrder) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}
	o.amount = amount
	return nil
}
