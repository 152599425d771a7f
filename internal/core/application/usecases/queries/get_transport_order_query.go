package queries

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrGetTransportOrderQueryIsNotConstructed = errors.New(
	"GetTransportOrderQuery must be created via NewGetTransportOrderQuery constructor",
)

// GetTransportOrderQuery retrieves one order with its child rows by file
// number.
type GetTransportOrderQuery struct {
	fileNumber string

	guard guard.ConstructorGuard
}

// NewGetTransportOrderQuery creates the query for the given file number.
func NewGetTransportOrderQuery(fileNumber string) (GetTransportOrderQuery, error) {
	if fileNumber == "" {
		return GetTransportOrderQuery{}, errs.NewValueIsRequiredError("file number")
	}

	return GetTransportOrderQuery{
		fileNumber: fileNumber,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransportOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportOrderQueryIsNotConstructed)
}

// FileNumber returns the natural key to look up.
func (q GetTransportOrderQuery) FileNumber() string {
	return q.fileNumber
}

// GetTransportOrderQueryResponse is the full order view.
type GetTransportOrderQueryResponse struct {
	ID               kernel.UUID
	FileNumber       string
	Customer         string
	CargoType        string
	Amount           float64
	AssignmentStatus string
	CargoLines       []string
	Assignments      []AssignmentView
}

// AssignmentView is one assignment row in the order view.
type AssignmentView struct {
	CargoRef        string
	TransporterType string
	AssignedVehicle string
	PlateNumber     string
	ContainerNumber string
	Amount          float64
	Currency        string
	Route           string
	Invoice         string
}
