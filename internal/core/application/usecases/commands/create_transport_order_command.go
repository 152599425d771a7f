package commands

import (
	"errors"

	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrCreateTransportOrderCommandIsNotConstructed = errors.New(
	"CreateTransportOrderCommand must be created via NewCreateTransportOrderCommand constructor",
)

// CreateTransportOrderCommand requests the creation of a transport order
// for a file number, carrying the caller-supplied order fields. The
// operation is get-or-create: an order already existing under the file
// number is returned untouched.
//
// Example:
//
//	cmd, err := NewCreateTransportOrderCommand("AF-0042", "ACME Freight", attrs)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateTransportOrderCommand struct {
	fileNumber string
	customer   string
	attrs      transportorder.OrderAttributes

	guard guard.ConstructorGuard
}

// NewCreateTransportOrderCommand creates the command. The file number is
// the idempotency key and must be present; everything else is optional.
func NewCreateTransportOrderCommand(
	fileNumber, customer string,
	attrs transportorder.OrderAttributes,
) (CreateTransportOrderCommand, error) {
	if fileNumber == "" {
		return CreateTransportOrderCommand{}, errs.NewValueIsRequiredError("file number")
	}

	return CreateTransportOrderCommand{
		fileNumber: fileNumber,
		customer:   customer,
		attrs:      attrs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportOrderCommandIsNotConstructed)
}

// FileNumber returns the order's natural key.
func (c CreateTransportOrderCommand) FileNumber() string {
	return c.fileNumber
}

// Customer returns the customer reference, possibly empty.
func (c CreateTransportOrderCommand) Customer() string {
	return c.customer
}

// Attributes returns the descriptive order fields.
func (c CreateTransportOrderCommand) Attributes() transportorder.OrderAttributes {
	return c.attrs
}
