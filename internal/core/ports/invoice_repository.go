package ports

import (
	"context"

	"transport/internal/core/domain/model/invoice"
)

// InvoiceRepository persists generated invoices.
type InvoiceRepository interface {
	// Add persists a new invoice with its lines.
	Add(ctx context.Context, inv *invoice.Invoice) error
}

// NamingSeries allocates unique sequential identifiers from a series
// template. The template may contain the ".YYYY." placeholder, replaced
// with the current year before the counter is appended, e.g.
// "ACC-SINV-TRV-.YYYY.-" yields "ACC-SINV-TRV-2026-00042".
type NamingSeries interface {
	Next(ctx context.Context, template string) (string, error)
}
