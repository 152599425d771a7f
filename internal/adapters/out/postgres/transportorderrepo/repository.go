package transportorderrepo

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormTransportOrderRepository implements TransportOrderRepository using GORM.
type GormTransportOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportOrderRepository creates a new GORM transport order repository.
func NewGormTransportOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportOrderRepository {
	return &GormTransportOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transport order with its child rows.
// A unique-index rejection on the file number maps to
// ports.ErrDuplicateFileNumber so the caller can fall back to the
// already-existing order.
func (r *GormTransportOrderRepository) Add(ctx context.Context, aggregate *transportorder.TransportOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines, assignments := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateFileNumber
		}
		return err
	}
	if err := r.saveChildren(ctx, lines, assignments); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the full aggregate state: header, cargo lines and
// assignment rows.
func (r *GormTransportOrderRepository) Update(ctx context.Context, aggregate *transportorder.TransportOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines, assignments := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.saveChildren(ctx, lines, assignments); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transport order by ID.
func (r *GormTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByFileNumber retrieves a transport order by its natural key.
func (r *GormTransportOrderRepository) GetByFileNumber(ctx context.Context, fileNumber string) (*transportorder.TransportOrder, error) {
	if fileNumber == "" {
		return nil, errs.NewValueIsRequiredError("fileNumber")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "file_number = ?", fileNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order", fileNumber)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByCargoRef resolves the order owning the assignment row keyed by
// the given cargo reference.
func (r *GormTransportOrderRepository) GetByCargoRef(ctx context.Context, cargoRef string) (*transportorder.TransportOrder, error) {
	if cargoRef == "" {
		return nil, errs.NewValueIsRequiredError("cargoRef")
	}

	var rowDTO AssignmentDTO
	if err := r.db.WithContext(ctx).First(&rowDTO, "cargo_ref = ?", cargoRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo reference", cargoRef)
		}
		return nil, err
	}

	var dto OrderDTO
	query := r.db.WithContext(ctx)
	if rowDTO.ParentDoctype == transportorder.Doctype {
		// Version 2 rows hang directly off the order document.
		query = query.Where("id = ?", rowDTO.ParentDocname)
	} else {
		query = query.Where("reference_doctype = ? AND reference_docname = ?",
			rowDTO.ParentDoctype, rowDTO.ParentDocname)
	}
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order for cargo reference", cargoRef)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// AddAssignment inserts one assignment row under the given parent
// document without touching the owning order.
func (r *GormTransportOrderRepository) AddAssignment(ctx context.Context,
	parentDoctype, parentDocname, parentField string, row *transportorder.Assignment) error {
	if err := row.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(parentDoctype, parentDocname, parentField, row)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("cargoRef", err)
		}
		return err
	}

	return nil
}

// SetAssignmentInvoice writes the invoice reference onto a single
// assignment row.
func (r *GormTransportOrderRepository) SetAssignmentInvoice(ctx context.Context,
	assignmentID kernel.UUID, invoiceName string) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", assignmentID.Bytes()).
		Update("invoice", invoiceName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", assignmentID.String())
	}

	return nil
}

// load fetches the child rows for the header under its anchor and
// reconstructs the aggregate. Rows come back ordered by idx so the
// status derivation sees them in document order.
func (r *GormTransportOrderRepository) load(ctx context.Context, dto OrderDTO) (*transportorder.TransportOrder, error) {
	parentDoctype := transportorder.Doctype
	parentDocname := dto.ID.String()
	cargoField := fieldCargo
	if dto.Version != 2 && dto.ReferenceDocname != "" {
		parentDoctype = dto.ReferenceDoctype
		parentDocname = dto.ReferenceDocname
		if parentDoctype == importDoctype {
			cargoField = fieldImportCargo
		}
	}

	var lineDTOs []CargoLineDTO
	err := r.db.WithContext(ctx).
		Where("parent_doctype = ? AND parent_docname = ? AND parent_field = ?",
			parentDoctype, parentDocname, cargoField).
		Order("idx ASC").
		Find(&lineDTOs).Error
	if err != nil {
		return nil, err
	}

	var assignmentDTOs []AssignmentDTO
	err = r.db.WithContext(ctx).
		Where("parent_doctype = ? AND parent_docname = ? AND parent_field = ?",
			parentDoctype, parentDocname, fieldAssignments).
		Order("idx ASC").
		Find(&assignmentDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs, assignmentDTOs)
}

// saveChildren upserts the child rows by primary key.
func (r *GormTransportOrderRepository) saveChildren(ctx context.Context,
	lines []CargoLineDTO, assignments []AssignmentDTO) error {
	upsert := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}

	if len(lines) > 0 {
		if err := r.db.WithContext(ctx).Clauses(upsert).Create(&lines).Error; err != nil {
			return err
		}
	}
	if len(assignments) > 0 {
		if err := r.db.WithContext(ctx).Clauses(upsert).Create(&assignments).Error; err != nil {
			return err
		}
	}

	return nil
}

// isUniqueViolation reports whether the database rejected the write on a
// unique index. The connection is opened through lib/pq, so the driver
// error carries the SQLSTATE code.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
