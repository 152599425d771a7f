package ports

import (
	"context"

	"transport/internal/core/domain/model/invoice"
	"transport/internal/core/domain/model/transportorder"
)

// DimensionSetter applies per-line ownership/reporting dimensions when an
// invoice is generated. The dimension vocabulary is owned by the
// accounting side; this core treats the collaborator as opaque.
type DimensionSetter interface {
	SetDimension(ctx context.Context,
		order *transportorder.TransportOrder,
		inv *invoice.Invoice,
		source *transportorder.Assignment,
		lineIdx int) error
}

// Notifier emits user-visible, non-blocking notifications. Failures to
// notify never fail the operation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
