// Package ports defines the contracts between the application core and
// its infrastructure: repositories, the unit of work, and the external
// collaborators of the invoicing workflow.
package ports

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
)

// ErrDuplicateFileNumber is returned by TransportOrderRepository.Add when
// the unique index on the file number rejects the insert. The create
// endpoint maps it back to get-or-create semantics.
var ErrDuplicateFileNumber = errors.New("file number already exists")

// TransportOrderRepository is the persistence contract for transport
// order aggregates and their child rows.
type TransportOrderRepository interface {
	// Add persists a new order aggregate with its child rows.
	Add(ctx context.Context, order *transportorder.TransportOrder) error

	// Update persists the full aggregate state: order fields, cargo lines
	// and assignment rows.
	Update(ctx context.Context, order *transportorder.TransportOrder) error

	// Get retrieves an order by its unique identifier, with child rows
	// loaded according to the order's ownership mode.
	Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error)

	// GetByFileNumber retrieves an order by its natural key.
	// Returns errs.ObjectNotFoundError when no order carries the number.
	GetByFileNumber(ctx context.Context, fileNumber string) (*transportorder.TransportOrder, error)

	// GetByCargoRef resolves the order owning the assignment row keyed by
	// the given cargo reference. Returns errs.ObjectNotFoundError when no
	// such row exists.
	GetByCargoRef(ctx context.Context, cargoRef string) (*transportorder.TransportOrder, error)

	// AddAssignment inserts a bare assignment row under the given parent
	// document without loading the owning order.
	AddAssignment(ctx context.Context, parentDoctype, parentDocname, parentField string,
		row *transportorder.Assignment) error

	// SetAssignmentInvoice writes the invoice reference onto one
	// assignment row as a field-level update, not a full resave.
	SetAssignmentInvoice(ctx context.Context, assignmentID kernel.UUID, invoiceName string) error
}
