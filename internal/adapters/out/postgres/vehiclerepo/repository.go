package vehiclerepo

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// GetStatuses returns the current status of each named vehicle. Names
// without a fleet record are absent from the result.
func (r *GormVehicleRepository) GetStatuses(ctx context.Context, names []string) (map[string]vehicle.Status, error) {
	statuses := make(map[string]vehicle.Status, len(names))
	if len(names) == 0 {
		return statuses, nil
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "name IN ?", names).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		statuses[dto.Name] = vehicle.Status(dto.Status)
	}
	return statuses, nil
}

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// ActiveTripRefs returns the subset of the given assignment row IDs that
// an active trip references back to.
func (r *GormTripRepository) ActiveTripRefs(ctx context.Context, assignmentIDs []kernel.UUID) (map[kernel.UUID]bool, error) {
	refs := make(map[kernel.UUID]bool, len(assignmentIDs))
	if len(assignmentIDs) == 0 {
		return refs, nil
	}

	ids := make([]uuid.UUID, 0, len(assignmentIDs))
	for _, id := range assignmentIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []TripDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "assignment_id IN ? AND active", ids).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.AssignmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		refs[id] = true
	}
	return refs, nil
}
