package queries

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetTransportOrderQueryHandler returns the full order view, child rows
// included, resolved the same way the write side anchors them.
type GetTransportOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTransportOrderQueryHandler creates a handler on the given
// database connection.
func NewGetTransportOrderQueryHandler(db *gorm.DB) GetTransportOrderQueryHandler {
	return GetTransportOrderQueryHandler{db: db}
}

type orderHeaderRow struct {
	ID               uuid.UUID
	FileNumber       string
	Customer         string
	CargoType        int
	Amount           float64
	AssignmentStatus int
	Version          int
	ReferenceDoctype string
	ReferenceDocname string
}

type assignmentRow struct {
	CargoRef        string
	TransporterType int
	AssignedVehicle string
	PlateNumber     string `gorm:"column:vehicle_plate_number"`
	ContainerNumber string
	Amount          float64
	Currency        string
	Route           string
	Invoice         string
}

// Handle loads the order named by the file number together with its
// cargo lines and assignment rows.
func (h GetTransportOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTransportOrderQuery,
) (GetTransportOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransportOrderQueryResponse{}, err
	}

	var header orderHeaderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			file_number,
			customer,
			cargo_type,
			amount,
			assignment_status,
			version,
			reference_doctype,
			reference_docname
		FROM transport_orders
		WHERE file_number = ?
	`, query.FileNumber()).First(&header).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetTransportOrderQueryResponse{}, errs.NewObjectNotFoundError("file number", query.FileNumber())
	}
	if err != nil {
		return GetTransportOrderQueryResponse{}, err
	}

	// Child rows are anchored under the order itself or under the
	// originating reference document, decided by the version marker.
	parentDoctype, parentDocname := transportorder.Doctype, header.ID.String()
	if header.Version != 2 && header.ReferenceDocname != "" {
		parentDoctype, parentDocname = header.ReferenceDoctype, header.ReferenceDocname
	}

	var resp GetTransportOrderQueryResponse
	if err = copier.Copy(&resp, &header); err != nil {
		return GetTransportOrderQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetTransportOrderQueryResponse{}, err
	}
	resp.ID = id
	resp.CargoType = transportorder.CargoType(header.CargoType).String()
	resp.AssignmentStatus = transportorder.AssignmentStatus(header.AssignmentStatus).String()

	err = h.db.WithContext(ctx).Raw(`
		SELECT container_number
		FROM cargo_lines
		WHERE parent_doctype = ? AND parent_docname = ?
		ORDER BY container_number
	`, parentDoctype, parentDocname).Scan(&resp.CargoLines).Error
	if err != nil {
		return GetTransportOrderQueryResponse{}, err
	}

	var assignmentRows []assignmentRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			cargo_ref,
			transporter_type,
			assigned_vehicle,
			vehicle_plate_number,
			container_number,
			amount,
			currency,
			route,
			invoice
		FROM transport_assignments
		WHERE parent_doctype = ? AND parent_docname = ?
		ORDER BY idx ASC
	`, parentDoctype, parentDocname).Scan(&assignmentRows).Error
	if err != nil {
		return GetTransportOrderQueryResponse{}, err
	}

	resp.Assignments = make([]AssignmentView, 0, len(assignmentRows))
	for _, row := range assignmentRows {
		var view AssignmentView
		if err = copier.Copy(&view, &row); err != nil {
			return GetTransportOrderQueryResponse{}, err
		}
		view.TransporterType = transportorder.TransporterType(row.TransporterType).String()
		resp.Assignments = append(resp.Assignments, view)
	}

	return resp, nil
}
