package commands

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand requests the generation of a sales invoice from
// all assignment rows of one transport order.
type CreateInvoiceCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates the command for the given order.
func NewCreateInvoiceCommand(orderID kernel.UUID) (CreateInvoiceCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return CreateInvoiceCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// OrderID returns the order to invoice.
func (c CreateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}
