// Package accounting hosts the accounting-side collaborators of invoice
// generation.
package accounting

import (
	"context"

	"transport/internal/core/domain/model/invoice"
	"transport/internal/core/domain/model/transportorder"
)

// DefaultDimensionSetter stamps the standard reporting dimensions onto
// each invoice line: the shipment file number, the owning company and
// the route driven for the line.
type DefaultDimensionSetter struct{}

// NewDefaultDimensionSetter creates the default dimension setter.
func NewDefaultDimensionSetter() *DefaultDimensionSetter {
	return &DefaultDimensionSetter{}
}

// SetDimension fills the line's dimensions from the order and the
// assignment row it was billed for. Blank values are left out so the
// accounting side sees only dimensions that actually carry data.
func (s *DefaultDimensionSetter) SetDimension(_ context.Context,
	order *transportorder.TransportOrder,
	inv *invoice.Invoice,
	source *transportorder.Assignment,
	lineIdx int) error {
	dims := make(map[string]string, 3)

	if fileNumber := order.FileNumber(); fileNumber != "" {
		dims["file_number"] = fileNumber
	}
	if company := order.Attributes().Company; company != "" {
		dims["company"] = company
	}
	if route := source.Details().Route; route != "" {
		dims["route"] = route
	}

	return inv.SetLineDimensions(lineIdx, dims)
}
