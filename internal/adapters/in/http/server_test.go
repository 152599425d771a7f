package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	transporthttp "transport/internal/adapters/in/http"
	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW { return f() }

func newServer(uow *MockUoW) *transporthttp.Server {
	return transporthttp.NewServer(
		commands.NewCreateTransportOrderCommandHandler(
			FuncOrderUoWFactory(func() commands.OrderUoW { return uow })),
		commands.NewAssignVehicleCommandHandler(
			FuncLifecycleUoWFactory(func() commands.LifecycleUoW { return uow })),
		commands.CreateInvoiceCommandHandler{},
		queries.GetTransportOrderQueryHandler{},
		queries.GetUnassignedOrdersQueryHandler{},
	)
}

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestServer_CreateTransportOrder_PassesReferencePair(t *testing.T) {
	repo := new(MockTransportOrderRepository)
	repo.On("GetByFileNumber", mock.Anything, "TO-2026-0100").
		Return(nil, errs.NewObjectNotFoundError("transport order", "TO-2026-0100")).Once()

	var created *transportorder.TransportOrder
	repo.On("Add", mock.Anything, mock.AnythingOfType("*transportorder.TransportOrder")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*transportorder.TransportOrder)
		}).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("TransportOrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil)

	ctx, rec := postJSON(t, `{
		"file_number": "TO-2026-0100",
		"reference_doctype": "Import",
		"reference_docname": "IMP-0100"
	}`)

	require.NoError(t, newServer(uow).CreateTransportOrder(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, created)
	assert.Equal(t, "Import", created.Attributes().ReferenceDoctype)
	assert.Equal(t, "IMP-0100", created.Attributes().ReferenceDocname)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestServer_AssignVehicle_ReassignmentKeepsRowPosition(t *testing.T) {
	o, err := transportorder.NewTransportOrder(
		kernel.NewUUID(), "TO-2026-0101", "", transportorder.LooseCargo, 500,
		transportorder.DirectOwnership(), transportorder.OrderAttributes{})
	require.NoError(t, err)

	row, err := transportorder.NewAssignment(kernel.NewUUID(), "TA-0101",
		transportorder.AssignmentDetails{Amount: 400, Route: "DAR-MWZ", Idx: 3})
	require.NoError(t, err)
	require.NoError(t, o.AddAssignment(row))

	repo := new(MockTransportOrderRepository)
	repo.On("GetByCargoRef", mock.Anything, "TA-0101").Return(o, nil).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("TransportOrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil)

	ctx, rec := postJSON(t, `{
		"cargo_ref": "TA-0101",
		"amount": 500,
		"route": "DAR-TBO",
		"assigned_idx": 3
	}`)

	require.NoError(t, newServer(uow).AssignVehicle(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The overwrite carries the row's position, so reassigning over the
	// wire does not shuffle the order's child-table ordering.
	assert.Equal(t, 3, row.Details().Idx)
	assert.Equal(t, 500.0, row.Details().Amount)
	assert.Equal(t, "DAR-TBO", row.Details().Route)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestServer_AssignVehicle_InsertCarriesRowPosition(t *testing.T) {
	repo := new(MockTransportOrderRepository)
	repo.On("GetByCargoRef", mock.Anything, "TA-0102").
		Return(nil, errs.NewObjectNotFoundError("cargo reference", "TA-0102")).Once()

	var inserted *transportorder.Assignment
	repo.On("AddAssignment", mock.Anything, transportorder.Doctype, "TO-2026-0102",
		"assign_transport", mock.AnythingOfType("*transportorder.Assignment")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(4).(*transportorder.Assignment)
		}).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("TransportOrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil)

	ctx, rec := postJSON(t, `{
		"cargo_ref": "TA-0102",
		"parent_doctype": "Transportation Order",
		"parent_docname": "TO-2026-0102",
		"amount": 250,
		"assigned_idx": 2
	}`)

	require.NoError(t, newServer(uow).AssignVehicle(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, inserted)
	assert.Equal(t, 2, inserted.Details().Idx)
	assert.Equal(t, 250.0, inserted.Details().Amount)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
