package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/invoice"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// invoiceSeriesTemplate is the naming series the generated invoices are
// numbered from, parameterized with the resolved department abbreviation.
const invoiceSeriesTemplate = "ACC-SINV-%s-.YYYY.-"

// CreateInvoiceCommandHandler materializes a sales invoice from an
// order's assignment rows: one line per row with quantity 1, numbered
// from a department-specific naming series, dimensions applied per line,
// and the invoice reference written back onto every contributing row.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	dimensions ports.DimensionSetter
	notifier   ports.Notifier
	taxRate    float64
}

// NewCreateInvoiceCommandHandler creates the handler. taxRate is the
// flat rate applied when recomputing the invoice's tax lines.
func NewCreateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	dimensions ports.DimensionSetter,
	notifier ports.Notifier,
	taxRate float64,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		dimensions: dimensions,
		notifier:   notifier,
		taxRate:    taxRate,
	}
}

// Handle generates the invoice. The department abbreviation must resolve
// through the fallback chain (order override, customer, company) before
// anything is created; a miss rejects the whole operation.
func (h CreateInvoiceCommandHandler) Handle(
	ctx context.Context,
	cmd CreateInvoiceCommand,
) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.TransportOrderRepository()

	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	deptAbbr, err := h.resolveDeptAbbr(ctx, uow, order)
	if err != nil {
		return nil, err
	}

	name, err := uow.NamingSeries().Next(ctx, fmt.Sprintf(invoiceSeriesTemplate, deptAbbr))
	if err != nil {
		return nil, err
	}

	inv, err := invoice.NewInvoice(name, time.Now(), order.Customer(), invoiceCurrency(order))
	if err != nil {
		return nil, err
	}

	for i, row := range order.Assignments() {
		inv.AddLine(invoice.LineFromAssignment(row))
		if err = h.dimensions.SetDimension(ctx, order, inv, row, i); err != nil {
			return nil, err
		}
	}

	inv.FillDefaults()
	inv.ApplyTaxes(h.taxRate)

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	for _, row := range order.Assignments() {
		if err = orderRepo.SetAssignmentInvoice(ctx, row.ID(), inv.Name()); err != nil {
			return nil, err
		}
		row.LinkInvoice(inv.Name())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, fmt.Sprintf("Sales Invoice %s created", inv.Name()))
	return inv, nil
}

// resolveDeptAbbr walks the fallback chain for the naming abbreviation:
// the order's explicit override, then the customer's department
// abbreviation, then the owning company's abbreviation.
func (h CreateInvoiceCommandHandler) resolveDeptAbbr(
	ctx context.Context,
	uow InvoiceUoW,
	order *transportorder.TransportOrder,
) (string, error) {
	if abbr := order.Attributes().DeptAbbr; abbr != "" {
		return abbr, nil
	}

	if customerName := order.Customer(); customerName != "" {
		customer, err := uow.CustomerRepository().Get(ctx, customerName)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return "", err
		}
		if customer != nil && customer.DeptAbbr != "" {
			return customer.DeptAbbr, nil
		}
	}

	if companyName := order.Attributes().Company; companyName != "" {
		company, err := uow.CompanyRepository().Get(ctx, companyName)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return "", err
		}
		if company != nil && company.Abbr != "" {
			return company.Abbr, nil
		}
	}

	return "", errs.NewValueIsRequiredError("department abbreviation")
}

// invoiceCurrency picks the invoice currency from the stamped assignment
// rows; all rows carry the customer's default currency once it is known.
func invoiceCurrency(order *transportorder.TransportOrder) string {
	for _, row := range order.Assignments() {
		if c := row.Currency(); c != "" {
			return c
		}
	}
	return ""
}
