// Package vehiclerepo reads fleet vehicle and trip state. The fleet
// module owns these tables; this side only queries them.
package vehiclerepo

import "github.com/google/uuid"

// VehicleDTO is the database row for a fleet vehicle.
type VehicleDTO struct {
	Name   string `gorm:"primaryKey"`
	Status string
}

// TableName overrides GORM's default naming.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// TripDTO is the database row for a vehicle trip. AssignmentID is the
// back-reference to the assignment row the trip was created from.
type TripDTO struct {
	Name         string    `gorm:"primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;index"`
	Active       bool
}

// TableName overrides GORM's default naming.
func (TripDTO) TableName() string {
	return "vehicle_trips"
}
