package invoice

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
// through NewInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice")

// Line is one billable position on an invoice. Every assignment row of
// the invoiced order contributes exactly one line with quantity 1.
type Line struct {
	ItemCode    string
	Qty         int
	Description string
	Amount      float64

	// SourceAssignment is the assignment row the line was built from,
	// used for the invoice write-back after insertion.
	SourceAssignment kernel.UUID

	// Dimensions carries per-line ownership/reporting dimensions filled
	// in by the dimension-assignment collaborator.
	Dimensions map[string]string
}

// LineFromAssignment builds the billable line for one assignment row.
// The description names the vehicle (fleet vehicle and trip for in-house
// rows, plate number for sub-contracted ones) and the route.
func LineFromAssignment(a *transportorder.Assignment) Line {
	details := a.Details()

	var desc string
	switch {
	case details.TransporterType == transportorder.InHouse && details.AssignedVehicle != "":
		desc = fmt.Sprintf("VEHICLE NUMBER: %s", details.AssignedVehicle)
		if a.CreatedTrip() != "" {
			desc += fmt.Sprintf("\nTRIP: %s", a.CreatedTrip())
		}
	case details.TransporterType == transportorder.SubContractor && details.VehiclePlateNumber != "":
		desc = fmt.Sprintf("VEHICLE NUMBER: %s", details.VehiclePlateNumber)
	}
	if details.Route != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += fmt.Sprintf("ROUTE: %s", details.Route)
	}

	return Line{
		ItemCode:         a.Item(),
		Qty:              1,
		Description:      desc,
		Amount:           details.Amount,
		SourceAssignment: a.ID(),
	}
}

// Invoice is the billing document materialized from an order's
// assignment rows. Its name is allocated through the naming series
// instead of the default numbering.
type Invoice struct {
	name        string
	postingDate time.Time
	customer    string
	currency    string
	lines       []Line

	netTotal   float64
	taxTotal   float64
	grandTotal float64

	isConstructed bool
}

// NewInvoice creates an invoice with its pre-allocated name.
func NewInvoice(name string, postingDate time.Time, customer, currency string) (*Invoice, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("invoice name")
	}

	return &Invoice{
		name:          name,
		postingDate:   postingDate,
		customer:      customer,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// Validate ensures the invoice was built through the constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// Name returns the allocated invoice identifier.
func (i *Invoice) Name() string {
	return i.name
}

// PostingDate returns the invoice posting date.
func (i *Invoice) PostingDate() time.Time {
	return i.postingDate
}

// Customer returns the billed customer.
func (i *Invoice) Customer() string {
	return i.customer
}

// Currency returns the invoice currency.
func (i *Invoice) Currency() string {
	return i.currency
}

// Lines returns the billable positions.
func (i *Invoice) Lines() []Line {
	return i.lines
}

// NetTotal returns the pre-tax total.
func (i *Invoice) NetTotal() float64 {
	return i.netTotal
}

// TaxTotal returns the computed tax amount.
func (i *Invoice) TaxTotal() float64 {
	return i.taxTotal
}

// GrandTotal returns the total including tax.
func (i *Invoice) GrandTotal() float64 {
	return i.grandTotal
}

// AddLine appends a billable position.
func (i *Invoice) AddLine(line Line) {
	i.lines = append(i.lines, line)
}

// SetLineDimensions merges dimension values onto the line at the given
// position. Used by the dimension-assignment collaborator.
func (i *Invoice) SetLineDimensions(idx int, dims map[string]string) error {
	if idx < 0 || idx >= len(i.lines) {
		return errs.NewValueIsOutOfRangeError("line index", idx, 0, len(i.lines)-1)
	}
	if i.lines[idx].Dimensions == nil {
		i.lines[idx].Dimensions = make(map[string]string, len(dims))
	}
	for k, v := range dims {
		i.lines[idx].Dimensions[k] = v
	}
	return nil
}

// FillDefaults recomputes the derived totals from the current lines.
// Must run before insertion so stored totals match the lines.
func (i *Invoice) FillDefaults() {
	var net float64
	for _, line := range i.lines {
		net += float64(line.Qty) * line.Amount
	}
	i.netTotal = net
	i.grandTotal = net + i.taxTotal
}

// ApplyTaxes recomputes the tax lines at the given rate and refreshes
// the grand total. Call after FillDefaults.
func (i *Invoice) ApplyTaxes(rate float64) {
	i.taxTotal = i.netTotal * rate
	i.grandTotal = i.netTotal + i.taxTotal
}
