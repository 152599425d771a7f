// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. Every business operation works through a fresh unit of
// work: repositories obtained from it share one database transaction, so
// the order header, its child rows and any naming series counters move
// together or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.TransportOrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op on the driver side, so
// the deferred call is safe on every path.
package postgres

import (
	"context"

	"transport/internal/adapters/out/postgres/invoicerepo"
	"transport/internal/adapters/out/postgres/partyrepo"
	"transport/internal/adapters/out/postgres/transportorderrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one shared
// GORM connection. Each Create call yields an isolated instance so
// concurrent operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out, and tracks the aggregates written through
// them for post-commit processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on the
// same instance is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// handle returns the active transaction, or the main connection when no
// transaction has been started.
func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TransportOrderRepository provides transport order persistence within
// the unit of work. Written aggregates are tracked automatically.
func (uow *GormUnitOfWork) TransportOrderRepository() ports.TransportOrderRepository {
	return transportorderrepo.NewGormTransportOrderRepository(uow.handle(), uow)
}

// VehicleRepository provides fleet vehicle reads within the unit of work.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.handle())
}

// TripRepository provides vehicle trip reads within the unit of work.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return vehiclerepo.NewGormTripRepository(uow.handle())
}

// CustomerRepository provides customer reads within the unit of work.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return partyrepo.NewGormCustomerRepository(uow.handle())
}

// CompanyRepository provides company reads within the unit of work.
func (uow *GormUnitOfWork) CompanyRepository() ports.CompanyRepository {
	return partyrepo.NewGormCompanyRepository(uow.handle())
}

// ImportRepository provides import shipment reads within the unit of work.
func (uow *GormUnitOfWork) ImportRepository() ports.ImportRepository {
	return partyrepo.NewGormImportRepository(uow.handle())
}

// InvoiceRepository provides invoice persistence within the unit of work.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.handle())
}

// NamingSeries provides the naming series allocator within the unit of
// work, so allocated names roll back together with the documents that
// would have carried them.
func (uow *GormUnitOfWork) NamingSeries() ports.NamingSeries {
	return invoicerepo.NewGormNamingSeries(uow.handle())
}

// TrackAggregate registers a domain aggregate as modified within this
// unit of work. Called by repository implementations on Add/Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
