package transportorder

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// CargoType distinguishes how an order's cargo is counted when deriving
// the assignment status: per container, or by aggregate amount.
type CargoType int

const (
	// CargoTypeUnknown catches uninitialized values.
	CargoTypeUnknown CargoType = iota

	// Container cargo is tracked per container number.
	Container

	// LooseCargo is tracked by the total assigned amount.
	LooseCargo
)

func cargoTypeStrings() map[CargoType]string {
	return map[CargoType]string{
		Container:  "Container",
		LooseCargo: "Loose Cargo",
	}
}

// CargoTypeFromString parses the wire/database representation of a cargo type.
func CargoTypeFromString(s string) (CargoType, error) {
	for ct, str := range cargoTypeStrings() {
		if str == s {
			return ct, nil
		}
	}
	return CargoTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cargo type", fmt.Errorf("%q is not a valid cargo type", s))
}

// Validate reports whether the cargo type is one of the known members.
func (c CargoType) Validate() error {
	if _, ok := cargoTypeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargo type", fmt.Errorf("%d is not a valid cargo type", c))
	}
	return nil
}

func (c CargoType) String() string {
	if s, ok := cargoTypeStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// AssignmentStatus is the derived coverage state of an order's transport
// assignments. It is recomputed from the child rows on every save and is
// never written independently of that computation.
type AssignmentStatus int

const (
	// AssignmentStatusUnknown catches uninitialized values.
	AssignmentStatusUnknown AssignmentStatus = iota

	// WaitingAssignment means no assignment rows exist yet.
	WaitingAssignment

	// PartiallyAssigned means assignments exist but do not cover the order.
	PartiallyAssigned

	// FullyAssigned means the assignments cover the order.
	FullyAssigned
)

func assignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		WaitingAssignment: "Waiting Assignment",
		PartiallyAssigned: "Partially Assigned",
		FullyAssigned:     "Fully Assigned",
	}
}

// AssignmentStatusFromString parses the wire/database representation of a status.
func AssignmentStatusFromString(s string) (AssignmentStatus, error) {
	for st, str := range assignmentStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return AssignmentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"assignment status", fmt.Errorf("%q is not a valid assignment status", s))
}

// Validate reports whether the status is one of the known members.
func (s AssignmentStatus) Validate() error {
	if _, ok := assignmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignment status", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

func (s AssignmentStatus) String() string {
	if str, ok := assignmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TransporterType says whether an assignment row is serviced by the
// company's own fleet or by a sub-contractor. It decides which vehicle
// and driver fields are meaningful on the row.
type TransporterType int

const (
	// TransporterTypeUnknown catches uninitialized values.
	TransporterTypeUnknown TransporterType = iota

	// InHouse rows reference fleet vehicles, trailers and drivers by ID.
	InHouse

	// SubContractor rows carry free-text plate numbers and driver details.
	SubContractor
)

func transporterTypeStrings() map[TransporterType]string {
	return map[TransporterType]string{
		InHouse:       "In House",
		SubContractor: "Sub-Contractor",
	}
}

// TransporterTypeFromString parses the wire/database representation of a
// transporter type.
func TransporterTypeFromString(s string) (TransporterType, error) {
	for tt, str := range transporterTypeStrings() {
		if str == s {
			return tt, nil
		}
	}
	return TransporterTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transporter type", fmt.Errorf("%q is not a valid transporter type", s))
}

// Validate reports whether the transporter type is one of the known members.
func (t TransporterType) Validate() error {
	if _, ok := transporterTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transporter type", fmt.Errorf("%d is not a valid transporter type", t))
	}
	return nil
}

func (t TransporterType) String() string {
	if s, ok := transporterTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}
