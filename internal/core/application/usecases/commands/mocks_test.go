package commands_test

import (
	"context"
	"time"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/invoice"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/party"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTransportOrderRepository struct{ mock.Mock }

func (m *MockTransportOrderRepository) Add(ctx context.Context, o *transportorder.TransportOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Update(ctx context.Context, o *transportorder.TransportOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transportorder.TransportOrder), args.Error(1)
}

func (m *MockTransportOrderRepository) GetByFileNumber(ctx context.Context, fileNumber string) (*transportorder.TransportOrder, error) {
	args := m.Called(ctx, fileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transportorder.TransportOrder), args.Error(1)
}

func (m *MockTransportOrderRepository) GetByCargoRef(ctx context.Context, cargoRef string) (*transportorder.TransportOrder, error) {
	args := m.Called(ctx, cargoRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transportorder.TransportOrder), args.Error(1)
}

func (m *MockTransportOrderRepository) AddAssignment(ctx context.Context,
	parentDoctype, parentDocname, parentField string, row *transportorder.Assignment) error {
	args := m.Called(ctx, parentDoctype, parentDocname, parentField, row)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) SetAssignmentInvoice(ctx context.Context,
	assignmentID kernel.UUID, invoiceName string) error {
	args := m.Called(ctx, assignmentID, invoiceName)
	return args.Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) GetStatuses(ctx context.Context, names []string) (map[string]vehicle.Status, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]vehicle.Status), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) ActiveTripRefs(ctx context.Context, assignmentIDs []kernel.UUID) (map[kernel.UUID]bool, error) {
	args := m.Called(ctx, assignmentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]bool), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, name string) (*party.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Customer), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Get(ctx context.Context, name string) (*party.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Company), args.Error(1)
}

type MockImportRepository struct{ mock.Mock }

func (m *MockImportRepository) GetOverdueOpen(ctx context.Context, cutoff time.Time) ([]*party.Import, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Import), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

type MockNamingSeries struct{ mock.Mock }

func (m *MockNamingSeries) Next(ctx context.Context, template string) (string, error) {
	args := m.Called(ctx, template)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, message string) {
	m.Called(ctx, message)
}

// MockUoW backs every narrowed unit of work interface the handlers
// declare; tests wire only the repositories their handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TransportOrderRepository() ports.TransportOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportOrderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) ImportRepository() ports.ImportRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) NamingSeries() ports.NamingSeries {
	args := m.Called()
	return args.Get(0).(ports.NamingSeries)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW { return f() }

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW { return f() }

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW { return f() }
