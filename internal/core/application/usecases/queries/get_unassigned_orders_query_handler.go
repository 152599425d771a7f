package queries

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler lists orders in Waiting Assignment
// status for dispatch planning.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler on the given
// database connection.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

type unassignedOrderRow struct {
	ID         uuid.UUID
	FileNumber string
	Customer   string
	CargoType  int
	Amount     float64
}

// Handle returns all orders whose derived status is Waiting Assignment,
// ordered by file number for stable output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []unassignedOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			file_number,
			customer,
			cargo_type,
			amount
		FROM transport_orders
		WHERE assignment_status = ?
		ORDER BY file_number
	`, transportorder.WaitingAssignment).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]GetUnassignedOrdersQueryResponse, 0, len(rows))
	for _, row := range rows {
		var resp GetUnassignedOrdersQueryResponse
		if err = copier.Copy(&resp, &row); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = id
		resp.CargoType = transportorder.CargoType(row.CargoType).String()

		responses = append(responses, resp)
	}

	return responses, nil
}
