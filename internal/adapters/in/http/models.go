package http

import (
	"github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewTransportOrderRequest is the body of POST /api/v1/transport-orders.
// The file number is the idempotency key; everything else is optional.
// The reference pair back-links the order to its originating record,
// e.g. an import shipment.
type NewTransportOrderRequest struct {
	FileNumber string `json:"file_number"`
	Customer   string `json:"customer,omitempty"`

	ReferenceDoctype string `json:"reference_doctype,omitempty"`
	ReferenceDocname string `json:"reference_docname,omitempty"`

	RequestReceived         *types.Date `json:"request_received,omitempty"`
	Consignee               string      `json:"consignee,omitempty"`
	Shipper                 string      `json:"shipper,omitempty"`
	CargoLocationCountry    string      `json:"cargo_location_country,omitempty"`
	CargoLocationCity       string      `json:"cargo_location_city,omitempty"`
	CargoDestinationCountry string      `json:"cargo_destination_country,omitempty"`
	CargoDestinationCity    string      `json:"cargo_destination_city,omitempty"`
	TransportType           string      `json:"transport_type,omitempty"`
	Company                 string      `json:"company,omitempty"`
	DeptAbbr                string      `json:"dept_abbr,omitempty"`
}

// TransportOrderCreatedResponse carries the ID of the created order, or
// of the order already existing under the file number.
type TransportOrderCreatedResponse struct {
	ID string `json:"id"`
}

// AssignVehicleRequest is the body of POST /api/v1/assignments. The
// cargo reference is the deduplication key; the parent pair anchors a
// newly inserted row and is ignored when the row already exists.
type AssignVehicleRequest struct {
	CargoRef      string `json:"cargo_ref"`
	ParentDoctype string `json:"parent_doctype,omitempty"`
	ParentDocname string `json:"parent_docname,omitempty"`

	TransporterType string `json:"transporter_type,omitempty"`

	AssignedVehicle string `json:"assigned_vehicle,omitempty"`
	AssignedTrailer string `json:"assigned_trailer,omitempty"`
	AssignedDriver  string `json:"assigned_driver,omitempty"`

	SubContractor      string `json:"sub_contractor,omitempty"`
	VehiclePlateNumber string `json:"vehicle_plate_number,omitempty"`
	TrailerPlateNumber string `json:"trailer_plate_number,omitempty"`
	DriverName         string `json:"driver_name,omitempty"`
	PassportNumber     string `json:"passport_number,omitempty"`

	ContainerNumber     string      `json:"container_number,omitempty"`
	Amount              float64     `json:"amount,omitempty"`
	Units               float64     `json:"units,omitempty"`
	Route               string      `json:"route,omitempty"`
	Idx                 int         `json:"assigned_idx,omitempty"`
	ExpectedLoadingDate *types.Date `json:"expected_loading_date,omitempty"`
}

// AssignVehicleResponse reports the outcome of the assignment call.
type AssignVehicleResponse struct {
	Result string `json:"result"`
}

// InvoiceResponse is the generated sales invoice.
type InvoiceResponse struct {
	Name        string     `json:"name"`
	PostingDate types.Date `json:"posting_date"`
	Customer    string     `json:"customer,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	NetTotal    float64    `json:"net_total"`
	TaxTotal    float64    `json:"tax_total"`
	GrandTotal  float64    `json:"grand_total"`
}

// TransportOrderResponse is the full order view.
type TransportOrderResponse struct {
	ID               string           `json:"id"`
	FileNumber       string           `json:"file_number"`
	Customer         string           `json:"customer,omitempty"`
	CargoType        string           `json:"cargo_type,omitempty"`
	Amount           float64          `json:"amount"`
	AssignmentStatus string           `json:"assignment_status,omitempty"`
	CargoLines       []string         `json:"cargo_lines"`
	Assignments      []AssignmentItem `json:"assignments"`
}

// AssignmentItem is one assignment row in the order view.
type AssignmentItem struct {
	CargoRef        string  `json:"cargo_ref"`
	TransporterType string  `json:"transporter_type,omitempty"`
	AssignedVehicle string  `json:"assigned_vehicle,omitempty"`
	PlateNumber     string  `json:"plate_number,omitempty"`
	ContainerNumber string  `json:"container_number,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency,omitempty"`
	Route           string  `json:"route,omitempty"`
	Invoice         string  `json:"invoice,omitempty"`
}

// UnassignedOrderItem is one order waiting for assignment.
type UnassignedOrderItem struct {
	ID         string  `json:"id"`
	FileNumber string  `json:"file_number"`
	Customer   string  `json:"customer,omitempty"`
	CargoType  string  `json:"cargo_type,omitempty"`
	Amount     float64 `json:"amount"`
}
