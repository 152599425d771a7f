// Package transportorderrepo persists the transport order aggregate:
// the order header plus its cargo line and assignment child rows, with
// the child anchoring resolved from the order's ownership mode.
package transportorderrepo

import (
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
)

// Child-table field names rows hang under on their parent document.
// Cargo lines anchored under an import keep that module's historical
// field name.
const (
	fieldAssignments = "assign_transport"
	fieldCargo       = "cargo"
	fieldImportCargo = "cargo_information"

	importDoctype = "Import"
)

// OrderDTO is the database row for a transport order header.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileNumber       string    `gorm:"uniqueIndex"`
	Customer         string
	CargoType        int
	Amount           float64
	AssignmentStatus int

	// Version 2 orders own their child rows directly; older orders reach
	// them through the reference pair.
	Version          int
	ReferenceDoctype string
	ReferenceDocname string

	RequestReceived         *time.Time
	Consignee               string
	Shipper                 string
	CargoLocationCountry    string
	CargoLocationCity       string
	CargoDestinationCountry string
	CargoDestinationCity    string
	TransportType           string
	Company                 string
	DeptAbbr                string
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "transport_orders"
}

// AssignmentDTO is the database row for one vehicle assignment.
type AssignmentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CargoRef string    `gorm:"uniqueIndex"`

	ParentDoctype string `gorm:"index:idx_assignment_parent"`
	ParentDocname string `gorm:"index:idx_assignment_parent"`
	ParentField   string

	Idx             int
	TransporterType int

	AssignedVehicle string `gorm:"index"`
	AssignedTrailer string
	AssignedDriver  string

	SubContractor      string
	VehiclePlateNumber string
	TrailerPlateNumber string
	DriverName         string
	PassportNumber     string

	ContainerNumber     string
	Amount              float64
	Units               float64
	Route               string
	ExpectedLoadingDate *time.Time

	Currency    string
	Item        string
	CreatedTrip string
	Invoice     string
}

// TableName overrides GORM's default naming.
func (AssignmentDTO) TableName() string {
	return "transport_assignments"
}

// CargoLineDTO is the database row for one cargo line.
type CargoLineDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ParentDoctype string `gorm:"index:idx_cargo_parent"`
	ParentDocname string `gorm:"index:idx_cargo_parent"`
	ParentField   string

	Idx             int
	ContainerNumber string
}

// TableName overrides GORM's default naming.
func (CargoLineDTO) TableName() string {
	return "cargo_lines"
}

// childAnchor resolves the parent pair and cargo field name child rows
// are stored under for the given order.
func childAnchor(order *transportorder.TransportOrder) (doctype, docname, cargoField string) {
	if refDoctype, refDocname, ok := order.Ownership().Reference(); ok {
		cargoField = fieldCargo
		if refDoctype == importDoctype {
			cargoField = fieldImportCargo
		}
		return refDoctype, refDocname, cargoField
	}
	return transportorder.Doctype, order.ID().String(), fieldCargo
}

// fromDomain maps the aggregate to its database rows.
func fromDomain(order *transportorder.TransportOrder) (OrderDTO, []CargoLineDTO, []AssignmentDTO) {
	attrs := order.Attributes()

	version := 1
	if order.Ownership().IsDirect() {
		version = 2
	}

	dto := OrderDTO{
		ID:               order.ID().Bytes(),
		FileNumber:       order.FileNumber(),
		Customer:         order.Customer(),
		CargoType:        int(order.CargoType()),
		Amount:           order.Amount(),
		AssignmentStatus: int(order.AssignmentStatus()),

		Version:          version,
		ReferenceDoctype: attrs.ReferenceDoctype,
		ReferenceDocname: attrs.ReferenceDocname,

		RequestReceived:         attrs.RequestReceived,
		Consignee:               attrs.Consignee,
		Shipper:                 attrs.Shipper,
		CargoLocationCountry:    attrs.CargoLocationCountry,
		CargoLocationCity:       attrs.CargoLocationCity,
		CargoDestinationCountry: attrs.CargoDestinationCountry,
		CargoDestinationCity:    attrs.CargoDestinationCity,
		TransportType:           attrs.TransportType,
		Company:                 attrs.Company,
		DeptAbbr:                attrs.DeptAbbr,
	}

	parentDoctype, parentDocname, cargoField := childAnchor(order)

	lines := make([]CargoLineDTO, 0, len(order.CargoLines()))
	for i, line := range order.CargoLines() {
		lines = append(lines, CargoLineDTO{
			ID:              line.ID().Bytes(),
			ParentDoctype:   parentDoctype,
			ParentDocname:   parentDocname,
			ParentField:     cargoField,
			Idx:             i + 1,
			ContainerNumber: line.ContainerNumber(),
		})
	}

	assignments := make([]AssignmentDTO, 0, len(order.Assignments()))
	for _, row := range order.Assignments() {
		assignments = append(assignments,
			assignmentFromDomain(parentDoctype, parentDocname, fieldAssignments, row))
	}

	return dto, lines, assignments
}

// assignmentFromDomain maps one assignment row under the given parent.
func assignmentFromDomain(parentDoctype, parentDocname, parentField string,
	row *transportorder.Assignment) AssignmentDTO {
	details := row.Details()

	return AssignmentDTO{
		ID:       row.ID().Bytes(),
		CargoRef: row.CargoRef(),

		ParentDoctype: parentDoctype,
		ParentDocname: parentDocname,
		ParentField:   parentField,

		Idx:             details.Idx,
		TransporterType: int(details.TransporterType),

		AssignedVehicle: details.AssignedVehicle,
		AssignedTrailer: details.AssignedTrailer,
		AssignedDriver:  details.AssignedDriver,

		SubContractor:      details.SubContractor,
		VehiclePlateNumber: details.VehiclePlateNumber,
		TrailerPlateNumber: details.TrailerPlateNumber,
		DriverName:         details.DriverName,
		PassportNumber:     details.PassportNumber,

		ContainerNumber:     details.ContainerNumber,
		Amount:              details.Amount,
		Units:               details.Units,
		Route:               details.Route,
		ExpectedLoadingDate: details.ExpectedLoadingDate,

		Currency:    row.Currency(),
		Item:        row.Item(),
		CreatedTrip: row.CreatedTrip(),
		Invoice:     row.Invoice(),
	}
}

// assignmentToDomain reconstructs one assignment row.
func assignmentToDomain(dto AssignmentDTO) (*transportorder.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return transportorder.RestoreAssignment(
		id,
		dto.CargoRef,
		dto.Currency,
		dto.Item,
		dto.CreatedTrip,
		dto.Invoice,
		transportorder.AssignmentDetails{
			TransporterType: transportorder.TransporterType(dto.TransporterType),

			AssignedVehicle: dto.AssignedVehicle,
			AssignedTrailer: dto.AssignedTrailer,
			AssignedDriver:  dto.AssignedDriver,

			SubContractor:      dto.SubContractor,
			VehiclePlateNumber: dto.VehiclePlateNumber,
			TrailerPlateNumber: dto.TrailerPlateNumber,
			DriverName:         dto.DriverName,
			PassportNumber:     dto.PassportNumber,

			ContainerNumber:     dto.ContainerNumber,
			Amount:              dto.Amount,
			Units:               dto.Units,
			Route:               dto.Route,
			ExpectedLoadingDate: dto.ExpectedLoadingDate,

			Idx: dto.Idx,
		},
	)
}

// toDomain reconstructs the aggregate from its rows.
func toDomain(dto OrderDTO, lineDTOs []CargoLineDTO, assignmentDTOs []AssignmentDTO) (*transportorder.TransportOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownership := transportorder.DirectOwnership()
	if dto.Version != 2 && dto.ReferenceDocname != "" {
		ownership, err = transportorder.ViaReference(dto.ReferenceDoctype, dto.ReferenceDocname)
		if err != nil {
			return nil, err
		}
	}

	lines := make([]*transportorder.CargoLine, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := transportorder.NewCargoLine(lineID, lineDTO.ContainerNumber)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	assignments := make([]*transportorder.Assignment, 0, len(assignmentDTOs))
	for _, assignmentDTO := range assignmentDTOs {
		row, rowErr := assignmentToDomain(assignmentDTO)
		if rowErr != nil {
			return nil, rowErr
		}
		assignments = append(assignments, row)
	}

	return transportorder.RestoreTransportOrder(
		id,
		dto.FileNumber,
		dto.Customer,
		transportorder.CargoType(dto.CargoType),
		dto.Amount,
		transportorder.AssignmentStatus(dto.AssignmentStatus),
		ownership,
		transportorder.OrderAttributes{
			RequestReceived:         dto.RequestReceived,
			Consignee:               dto.Consignee,
			Shipper:                 dto.Shipper,
			CargoLocationCountry:    dto.CargoLocationCountry,
			CargoLocationCity:       dto.CargoLocationCity,
			CargoDestinationCountry: dto.CargoDestinationCountry,
			CargoDestinationCity:    dto.CargoDestinationCity,
			TransportType:           dto.TransportType,
			ReferenceDoctype:        dto.ReferenceDoctype,
			ReferenceDocname:        dto.ReferenceDocname,
			Company:                 dto.Company,
			DeptAbbr:                dto.DeptAbbr,
		},
		lines,
		assignments,
	)
}
