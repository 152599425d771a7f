// Package commands contains the write-side business operations of the
// transport service. Every handler follows the same shape: validate the
// command, open a unit of work, perform repository operations, commit.
package commands

import (
	"context"

	"transport/internal/core/ports"
)

// Unit of work interfaces, narrowed per handler so each command declares
// exactly the repositories it touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderUoW manages transactions for operations touching only the
	// transport order aggregate.
	OrderUoW interface {
		TxManager
		TransportOrderRepository() ports.TransportOrderRepository
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW covers a full order save: the order itself plus the
	// fleet and customer state the save-time rules consult.
	LifecycleUoW interface {
		TxManager
		TransportOrderRepository() ports.TransportOrderRepository
		VehicleRepository() ports.VehicleRepository
		TripRepository() ports.TripRepository
		CustomerRepository() ports.CustomerRepository
	}

	// LifecycleUoWFactory creates lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// InvoiceUoW covers invoice generation: the order, the parties the
	// naming abbreviation falls back through, the invoice store and the
	// naming series.
	InvoiceUoW interface {
		TxManager
		TransportOrderRepository() ports.TransportOrderRepository
		CustomerRepository() ports.CustomerRepository
		CompanyRepository() ports.CompanyRepository
		InvoiceRepository() ports.InvoiceRepository
		NamingSeries() ports.NamingSeries
	}

	// InvoiceUoWFactory creates invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// SweepUoW covers the import sweep's read of overdue imports.
	SweepUoW interface {
		TxManager
		ImportRepository() ports.ImportRepository
	}

	// SweepUoWFactory creates sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
