package invoicerepo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"transport/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

const (
	yearPlaceholder = ".YYYY."
	counterPadding  = 5
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add persists a new invoice with its lines.
func (r *GormInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	dto, lines, err := fromDomain(inv)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err = r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	return nil
}

// GormNamingSeries allocates sequential names from per-prefix counter
// rows. The increment relies on the row lock taken by the UPDATE, so
// two concurrent allocations inside separate transactions never yield
// the same name.
type GormNamingSeries struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormNamingSeries creates a naming series allocator.
func NewGormNamingSeries(db *gorm.DB) *GormNamingSeries {
	return &GormNamingSeries{db: db, now: time.Now}
}

// Next allocates the next name in the series. The ".YYYY." placeholder
// is replaced with the current year before the counter is resolved, so
// "ACC-SINV-TRV-.YYYY.-" yields names like "ACC-SINV-TRV-2026-00042".
func (s *GormNamingSeries) Next(ctx context.Context, template string) (string, error) {
	year := strconv.Itoa(s.now().Year())
	prefix := strings.ReplaceAll(template, yearPlaceholder, year)

	var current int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO naming_series (prefix, current) VALUES (?, 1)
		 ON CONFLICT (prefix) DO UPDATE SET current = naming_series.current + 1
		 RETURNING current`,
		prefix,
	).Scan(&current).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%0*d", prefix, counterPadding, current), nil
}
