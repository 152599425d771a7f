package cmd

import (
	"log/slog"

	"transport/internal/adapters/in/http"
	"transport/internal/adapters/out/accounting"
	"transport/internal/adapters/out/notify"
	"transport/internal/adapters/out/postgres"
	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Handlers are created per
// call; the factories close over the shared unit of work factory so
// every operation runs in its own transaction.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	taxRate    float64
}

func NewCompositionRoot(gormDB *gorm.DB, logger *slog.Logger, taxRate float64) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		taxRate:    taxRate,
	}
}

func (c *CompositionRoot) CreateCreateTransportOrderCommandHandler() commands.CreateTransportOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransportOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(
		f,
		accounting.NewDefaultDimensionSetter(),
		notify.NewSlogNotifier(c.logger),
		c.taxRate,
	)
}

func (c *CompositionRoot) CreateSweepImportsCommandHandler() commands.SweepImportsCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepImportsCommandHandler(f, c.CreateCreateTransportOrderCommandHandler())
}

func (c *CompositionRoot) CreateGetTransportOrderQueryHandler() queries.GetTransportOrderQueryHandler {
	return queries.NewGetTransportOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateTransportOrderCommandHandler(),
		c.CreateAssignVehicleCommandHandler(),
		c.CreateCreateInvoiceCommandHandler(),
		c.CreateGetTransportOrderQueryHandler(),
		c.CreateGetUnassignedOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepImportsCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
