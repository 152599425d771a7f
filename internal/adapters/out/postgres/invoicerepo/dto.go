// Package invoicerepo persists generated invoices and allocates names
// from the naming series counters.
package invoicerepo

import (
	"encoding/json"
	"time"

	"transport/internal/core/domain/model/invoice"
	"transport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO is the database row for an invoice header.
type InvoiceDTO struct {
	Name        string `gorm:"primaryKey"`
	PostingDate time.Time
	Customer    string
	Currency    string

	NetTotal   float64
	TaxTotal   float64
	GrandTotal float64
}

// TableName overrides GORM's default naming.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceLineDTO is the database row for one invoice line. Dimensions
// are stored as a JSON object.
type InvoiceLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceName string    `gorm:"index"`
	Idx         int

	ItemCode    string
	Qty         int
	Description string
	Amount      float64

	SourceAssignment uuid.UUID `gorm:"type:uuid"`
	Dimensions       string
}

// TableName overrides GORM's default naming.
func (InvoiceLineDTO) TableName() string {
	return "invoice_lines"
}

// NamingCounterDTO is one naming series counter row. Prefix is the
// series template with the year placeholder already resolved, so each
// year rolls over to a fresh counter.
type NamingCounterDTO struct {
	Prefix  string `gorm:"primaryKey"`
	Current int64
}

// TableName overrides GORM's default naming.
func (NamingCounterDTO) TableName() string {
	return "naming_series"
}

// fromDomain maps the invoice to its database rows.
func fromDomain(inv *invoice.Invoice) (InvoiceDTO, []InvoiceLineDTO, error) {
	dto := InvoiceDTO{
		Name:        inv.Name(),
		PostingDate: inv.PostingDate(),
		Customer:    inv.Customer(),
		Currency:    inv.Currency(),
		NetTotal:    inv.NetTotal(),
		TaxTotal:    inv.TaxTotal(),
		GrandTotal:  inv.GrandTotal(),
	}

	lines := make([]InvoiceLineDTO, 0, len(inv.Lines()))
	for i, line := range inv.Lines() {
		dims, err := marshalDimensions(line.Dimensions)
		if err != nil {
			return InvoiceDTO{}, nil, err
		}

		lines = append(lines, InvoiceLineDTO{
			ID:          kernel.NewUUID().Bytes(),
			InvoiceName: inv.Name(),
			Idx:         i + 1,

			ItemCode:    line.ItemCode,
			Qty:         line.Qty,
			Description: line.Description,
			Amount:      line.Amount,

			SourceAssignment: line.SourceAssignment.Bytes(),
			Dimensions:       dims,
		})
	}

	return dto, lines, nil
}

func marshalDimensions(dims map[string]string) (string, error) {
	if len(dims) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(dims)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
