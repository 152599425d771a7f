package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command so
// concurrent operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the explicit transaction/session object every operation
// works through. It replaces any ambient database handle: repositories
// obtained from it run inside the transaction started by Begin.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	TransportOrderRepository() TransportOrderRepository
	VehicleRepository() VehicleRepository
	TripRepository() TripRepository
	CustomerRepository() CustomerRepository
	CompanyRepository() CompanyRepository
	ImportRepository() ImportRepository
	InvoiceRepository() InvoiceRepository
	NamingSeries() NamingSeries
}
