package ports

import (
	"context"
	"time"

	"transport/internal/core/domain/model/party"
)

// CustomerRepository reads customer records.
type CustomerRepository interface {
	// Get retrieves a customer by name. Returns errs.ObjectNotFoundError
	// when the customer does not exist.
	Get(ctx context.Context, name string) (*party.Customer, error)
}

// CompanyRepository reads company records.
type CompanyRepository interface {
	// Get retrieves a company by name. Returns errs.ObjectNotFoundError
	// when the company does not exist.
	Get(ctx context.Context, name string) (*party.Company, error)
}

// ImportRepository reads import records for the order sweep.
type ImportRepository interface {
	// GetOverdueOpen returns imports that are not closed and whose ETA is
	// before the given cutoff.
	GetOverdueOpen(ctx context.Context, cutoff time.Time) ([]*party.Import, error)
}
