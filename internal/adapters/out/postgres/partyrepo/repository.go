package partyrepo

import (
	"context"
	"errors"
	"time"

	"transport/internal/core/domain/model/party"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

const importClosedStatus = "Closed"

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a customer by name.
func (r *GormCustomerRepository) Get(ctx context.Context, name string) (*party.Customer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", name)
		}
		return nil, err
	}

	return customerToDomain(dto), nil
}

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Get retrieves a company by name.
func (r *GormCompanyRepository) Get(ctx context.Context, name string) (*party.Company, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("company name")
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", name)
		}
		return nil, err
	}

	return companyToDomain(dto), nil
}

// GormImportRepository implements ImportRepository using GORM.
type GormImportRepository struct {
	db *gorm.DB
}

// NewGormImportRepository creates a new GORM import repository.
func NewGormImportRepository(db *gorm.DB) *GormImportRepository {
	return &GormImportRepository{db: db}
}

// GetOverdueOpen returns imports that are not closed and whose ETA is
// before the given cutoff. Imports without an ETA never qualify. The
// import records are owned by other modules, so a NULL status counts as
// open.
func (r *GormImportRepository) GetOverdueOpen(ctx context.Context, cutoff time.Time) ([]*party.Import, error) {
	var dtos []ImportDTO
	err := r.db.WithContext(ctx).
		Where("(status <> ? OR status IS NULL) AND eta IS NOT NULL AND eta < ?", importClosedStatus, cutoff).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	imports := make([]*party.Import, 0, len(dtos))
	for _, dto := range dtos {
		imports = append(imports, importToDomain(dto))
	}
	return imports, nil
}
