// Package http exposes the service's REST API on echo. Handlers decode
// the wire payloads, build the corresponding commands and queries, and
// translate domain errors into uniform JSON error responses.
package http

import (
	"errors"
	"net/http"
	"time"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateTransportOrderCommandHandler
	assignVehicleHandler commands.AssignVehicleCommandHandler
	createInvoiceHandler commands.CreateInvoiceCommandHandler

	// Query handlers
	getOrderHandler      queries.GetTransportOrderQueryHandler
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateTransportOrderCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	getOrderHandler queries.GetTransportOrderQueryHandler,
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		assignVehicleHandler: assignVehicleHandler,
		createInvoiceHandler: createInvoiceHandler,
		getOrderHandler:      getOrderHandler,
		getUnassignedHandler: getUnassignedHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/transport-orders", s.CreateTransportOrder)
	api.POST("/assignments", s.AssignVehicle)
	api.POST("/transport-orders/:id/invoice", s.CreateInvoice)

	api.GET("/transport-orders/unassigned", s.GetUnassignedOrders)
	api.GET("/transport-orders/:fileNumber", s.GetTransportOrder)

	e.GET("/health", s.Health)
}

// CreateTransportOrder handles POST /api/v1/transport-orders. The call
// is idempotent on the file number: a repeated request returns the ID of
// the order already created for it.
func (s *Server) CreateTransportOrder(ctx echo.Context) error {
	var req NewTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateTransportOrderCommand(req.FileNumber, req.Customer,
		transportorder.OrderAttributes{
			RequestReceived:         dateToTime(req.RequestReceived),
			Consignee:               req.Consignee,
			Shipper:                 req.Shipper,
			CargoLocationCountry:    req.CargoLocationCountry,
			CargoLocationCity:       req.CargoLocationCity,
			CargoDestinationCountry: req.CargoDestinationCountry,
			CargoDestinationCity:    req.CargoDestinationCity,
			TransportType:           req.TransportType,
			ReferenceDoctype:        req.ReferenceDoctype,
			ReferenceDocname:        req.ReferenceDocname,
			Company:                 req.Company,
			DeptAbbr:                req.DeptAbbr,
		})
	if err != nil {
		return domainError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransportOrderCreatedResponse{ID: orderID.String()})
}

// AssignVehicle handles POST /api/v1/assignments. The call is
// create-or-update on the cargo reference and reports success either way.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var req AssignVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := transportorder.AssignmentDetails{
		AssignedVehicle: req.AssignedVehicle,
		AssignedTrailer: req.AssignedTrailer,
		AssignedDriver:  req.AssignedDriver,

		SubContractor:      req.SubContractor,
		VehiclePlateNumber: req.VehiclePlateNumber,
		TrailerPlateNumber: req.TrailerPlateNumber,
		DriverName:         req.DriverName,
		PassportNumber:     req.PassportNumber,

		ContainerNumber:     req.ContainerNumber,
		Amount:              req.Amount,
		Units:               req.Units,
		Route:               req.Route,
		Idx:                 req.Idx,
		ExpectedLoadingDate: dateToTime(req.ExpectedLoadingDate),
	}
	if req.TransporterType != "" {
		transporterType, err := transportorder.TransporterTypeFromString(req.TransporterType)
		if err != nil {
			return domainError(ctx, err)
		}
		details.TransporterType = transporterType
	}

	cmd, err := commands.NewAssignVehicleCommand(req.CargoRef, details,
		req.ParentDoctype, req.ParentDocname)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignVehicleResponse{Result: result})
}

// CreateInvoice handles POST /api/v1/transport-orders/:id/invoice.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCreateInvoiceCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	inv, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, InvoiceResponse{
		Name:        inv.Name(),
		PostingDate: types.Date{Time: inv.PostingDate()},
		Customer:    inv.Customer(),
		Currency:    inv.Currency(),
		NetTotal:    inv.NetTotal(),
		TaxTotal:    inv.TaxTotal(),
		GrandTotal:  inv.GrandTotal(),
	})
}

// GetTransportOrder handles GET /api/v1/transport-orders/:fileNumber.
func (s *Server) GetTransportOrder(ctx echo.Context) error {
	query, err := queries.NewGetTransportOrderQuery(ctx.Param("fileNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	resp := TransportOrderResponse{
		ID:               view.ID.String(),
		FileNumber:       view.FileNumber,
		Customer:         view.Customer,
		CargoType:        view.CargoType,
		Amount:           view.Amount,
		AssignmentStatus: view.AssignmentStatus,
		CargoLines:       view.CargoLines,
		Assignments:      make([]AssignmentItem, 0, len(view.Assignments)),
	}
	if resp.CargoLines == nil {
		resp.CargoLines = []string{}
	}
	for _, row := range view.Assignments {
		resp.Assignments = append(resp.Assignments, AssignmentItem{
			CargoRef:        row.CargoRef,
			TransporterType: row.TransporterType,
			AssignedVehicle: row.AssignedVehicle,
			PlateNumber:     row.PlateNumber,
			ContainerNumber: row.ContainerNumber,
			Amount:          row.Amount,
			Currency:        row.Currency,
			Route:           row.Route,
			Invoice:         row.Invoice,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetUnassignedOrders handles GET /api/v1/transport-orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	resp := make([]UnassignedOrderItem, 0, len(orders))
	for _, row := range orders {
		resp = append(resp, UnassignedOrderItem{
			ID:         row.ID.String(),
			FileNumber: row.FileNumber,
			Customer:   row.Customer,
			CargoType:  row.CargoType,
			Amount:     row.Amount,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain errors onto HTTP statuses: missing objects to
// 404, rejected values to 422, everything else to 500.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func dateToTime(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
