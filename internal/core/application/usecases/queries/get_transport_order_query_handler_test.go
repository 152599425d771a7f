package queries_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/postgres/transportorderrepo"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetTransportOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetTransportOrderQueryHandler
	orderRepo *transportorderrepo.GormTransportOrderRepository
}

func (suite *GetTransportOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&transportorderrepo.OrderDTO{},
		&transportorderrepo.CargoLineDTO{},
		&transportorderrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetTransportOrderQueryHandler(db)
	suite.orderRepo = transportorderrepo.NewGormTransportOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetTransportOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE transport_orders, transport_assignments, cargo_lines").Error
	suite.Require().NoError(err)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestHandle_DirectOrder_ReturnsFullView() {
	order := suite.buildOrder("TO-2026-3001", transportorder.DirectOwnership())
	suite.addCargoLine(order, "TCLU1234567")
	suite.addAssignment(order, "TA-3001", transportorder.AssignmentDetails{
		TransporterType: transportorder.InHouse,
		AssignedVehicle: "TRUCK-01",
		ContainerNumber: "TCLU1234567",
		Amount:          800,
		Route:           "DAR - MWANZA",
	})
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), order))

	query, err := queries.NewGetTransportOrderQuery("TO-2026-3001")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.ID(), result.ID)
	suite.Equal("TO-2026-3001", result.FileNumber)
	suite.Equal("ACME Freight", result.Customer)
	suite.Equal("Container", result.CargoType)
	suite.Equal("Fully Assigned", result.AssignmentStatus)
	suite.Equal([]string{"TCLU1234567"}, result.CargoLines)

	suite.Require().Len(result.Assignments, 1)
	row := result.Assignments[0]
	suite.Equal("TA-3001", row.CargoRef)
	suite.Equal("In House", row.TransporterType)
	suite.Equal("TRUCK-01", row.AssignedVehicle)
	suite.Equal("DAR - MWANZA", row.Route)
	suite.Equal(800.0, row.Amount)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestHandle_ImportAnchoredOrder_ResolvesChildRows() {
	ownership, err := transportorder.ViaReference("Import", "IMP-0007")
	suite.Require().NoError(err)

	order := suite.buildOrder("TO-2026-3002", ownership)
	suite.addAssignment(order, "TA-3002", transportorder.AssignmentDetails{
		TransporterType:    transportorder.SubContractor,
		SubContractor:      "Kilimanjaro Haulage",
		VehiclePlateNumber: "T 123 ABC",
		Amount:             600,
	})
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), order))

	query, err := queries.NewGetTransportOrderQuery("TO-2026-3002")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.ID(), result.ID)
	suite.Require().Len(result.Assignments, 1)
	suite.Equal("Sub-Contractor", result.Assignments[0].TransporterType)
	suite.Equal("T 123 ABC", result.Assignments[0].PlateNumber)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestHandle_CargoLinesAreSortedByContainerNumber() {
	order := suite.buildOrder("TO-2026-3003", transportorder.DirectOwnership())
	suite.addCargoLine(order, "MSKU7654321")
	suite.addCargoLine(order, "TCLU1234567")
	suite.addCargoLine(order, "GESU0000001")
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), order))

	query, err := queries.NewGetTransportOrderQuery("TO-2026-3003")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"GESU0000001", "MSKU7654321", "TCLU1234567"}, result.CargoLines)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestHandle_UnknownFileNumber_ReturnsNotFoundError() {
	query, err := queries.NewGetTransportOrderQuery("TO-2026-9999")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTransportOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetTransportOrderQuery constructor")
}

func (suite *GetTransportOrderQueryHandlerTestSuite) TestNewGetTransportOrderQuery_EmptyFileNumber_ReturnsError() {
	_, err := queries.NewGetTransportOrderQuery("")

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *GetTransportOrderQueryHandlerTestSuite) buildOrder(
	fileNumber string, ownership transportorder.OwnershipMode,
) *transportorder.TransportOrder {
	attrs := transportorder.OrderAttributes{}
	if refDoctype, refDocname, ok := ownership.Reference(); ok {
		attrs.ReferenceDoctype = refDoctype
		attrs.ReferenceDocname = refDocname
	}

	order, err := transportorder.NewTransportOrder(
		kernel.NewUUID(),
		fileNumber,
		"ACME Freight",
		transportorder.Container,
		0,
		ownership,
		attrs,
	)
	suite.Require().NoError(err)
	return order
}

func (suite *GetTransportOrderQueryHandlerTestSuite) addCargoLine(
	order *transportorder.TransportOrder, containerNumber string,
) {
	line, err := transportorder.NewCargoLine(kernel.NewUUID(), containerNumber)
	suite.Require().NoError(err)
	suite.Require().NoError(order.AddCargoLine(line))
}

func (suite *GetTransportOrderQueryHandlerTestSuite) addAssignment(
	order *transportorder.TransportOrder, cargoRef string, details transportorder.AssignmentDetails,
) {
	row, err := transportorder.NewAssignment(kernel.NewUUID(), cargoRef, details)
	suite.Require().NoError(err)
	suite.Require().NoError(order.AddAssignment(row))
	order.RecalculateAssignmentStatus()
}

func TestGetTransportOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTransportOrderQueryHandlerTestSuite))
}
