package commands

import (
	"context"
	"time"

	"transport/internal/core/domain/model/party"
	"transport/internal/core/domain/model/transportorder"
)

// importOverdueAfter is how far past its ETA an open import must be
// before the sweep creates a transport order for it.
const importOverdueAfter = 10 * 24 * time.Hour

// importReferenceDoctype is the back-link document type stamped onto
// orders the sweep creates.
const importReferenceDoctype = "Import"

// SweepImportsCommandHandler performs the periodic sweep: every open
// import whose ETA is more than ten days past gets a transport order,
// created through the idempotent creation handler. Pure fan-out; the
// sweep itself deduplicates nothing.
type SweepImportsCommandHandler struct {
	uowFactory    SweepUoWFactory
	createHandler CreateTransportOrderCommandHandler
}

// NewSweepImportsCommandHandler creates the handler.
func NewSweepImportsCommandHandler(
	uowFactory SweepUoWFactory,
	createHandler CreateTransportOrderCommandHandler,
) SweepImportsCommandHandler {
	return SweepImportsCommandHandler{
		uowFactory:    uowFactory,
		createHandler: createHandler,
	}
}

// Handle runs one sweep. Imports without a file number are skipped:
// the creation endpoint cannot key an order for them.
func (h SweepImportsCommandHandler) Handle(ctx context.Context, cmd SweepImportsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	overdue, err := h.overdueImports(ctx)
	if err != nil {
		return err
	}

	for _, imp := range overdue {
		if imp.ReferenceFileNumber == "" {
			continue
		}

		createCmd, cmdErr := NewCreateTransportOrderCommand(
			imp.ReferenceFileNumber,
			"",
			transportorder.OrderAttributes{
				ReferenceDoctype: importReferenceDoctype,
				ReferenceDocname: imp.Name,
			},
		)
		if cmdErr != nil {
			return cmdErr
		}

		if _, createErr := h.createHandler.Handle(ctx, createCmd); createErr != nil {
			return createErr
		}
	}

	return nil
}

func (h SweepImportsCommandHandler) overdueImports(ctx context.Context) ([]*party.Import, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.ImportRepository().GetOverdueOpen(ctx, time.Now().Add(-importOverdueAfter))
}
