package commands_test

import (
	"testing"
	"time"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/party"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepImportsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	eta := time.Now().Add(-15 * 24 * time.Hour)

	imports := new(MockImportRepository)
	imports.On("GetOverdueOpen", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		// The sweep asks for imports more than ten days past their ETA.
		return time.Since(cutoff) > 9*24*time.Hour && time.Since(cutoff) < 11*24*time.Hour
	})).Return([]*party.Import{
		{Name: "IMP-0007", Status: "Open", ETA: &eta, ReferenceFileNumber: "AF-0042"},
		{Name: "IMP-0008", Status: "Open", ETA: &eta, ReferenceFileNumber: ""},
	}, nil).Once()

	sweepUoW := new(MockUoW)
	sweepUoW.On("Begin", ctx).Return(nil).Once()
	sweepUoW.On("ImportRepository").Return(imports).Once()
	sweepUoW.On("Rollback", ctx).Return(nil)

	orderRepo := new(MockTransportOrderRepository)
	orderRepo.On("GetByFileNumber", ctx, "AF-0042").
		Return(nil, errs.NewObjectNotFoundError("transport order", "AF-0042")).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*transportorder.TransportOrder")).Return(nil).Once()

	orderUoW := new(MockUoW)
	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("TransportOrderRepository").Return(orderRepo).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil)

	createHandler := commands.NewCreateTransportOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return orderUoW }))
	h := commands.NewSweepImportsCommandHandler(
		FuncSweepUoWFactory(func() commands.SweepUoW { return sweepUoW }),
		createHandler)

	err := h.Handle(ctx, commands.NewSweepImportsCommand())
	require.NoError(t, err)

	// Only the import with a file number became an order, carrying the
	// reference pair back to its import.
	created := orderRepo.Calls[1].Arguments.Get(1).(*transportorder.TransportOrder)
	assert.Equal(t, "AF-0042", created.FileNumber())
	assert.Equal(t, "Import", created.Attributes().ReferenceDoctype)
	assert.Equal(t, "IMP-0007", created.Attributes().ReferenceDocname)

	imports.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestSweepImportsCommandHandler_Handle_ExistingOrdersAreLeftAlone(t *testing.T) {
	ctx := t.Context()
	eta := time.Now().Add(-15 * 24 * time.Hour)

	imports := new(MockImportRepository)
	imports.On("GetOverdueOpen", ctx, mock.Anything).Return([]*party.Import{
		{Name: "IMP-0007", Status: "Open", ETA: &eta, ReferenceFileNumber: "AF-0042"},
	}, nil).Once()

	sweepUoW := new(MockUoW)
	sweepUoW.On("Begin", ctx).Return(nil).Once()
	sweepUoW.On("ImportRepository").Return(imports).Once()
	sweepUoW.On("Rollback", ctx).Return(nil)

	existing := existingOrder(t, "AF-0042")
	orderRepo := new(MockTransportOrderRepository)
	orderRepo.On("GetByFileNumber", ctx, "AF-0042").Return(existing, nil).Once()

	orderUoW := new(MockUoW)
	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("TransportOrderRepository").Return(orderRepo).Once()
	orderUoW.On("Rollback", ctx).Return(nil)

	h := commands.NewSweepImportsCommandHandler(
		FuncSweepUoWFactory(func() commands.SweepUoW { return sweepUoW }),
		commands.NewCreateTransportOrderCommandHandler(
			FuncOrderUoWFactory(func() commands.OrderUoW { return orderUoW })))

	err := h.Handle(ctx, commands.NewSweepImportsCommand())
	require.NoError(t, err)

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSweepImportsCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSweepImportsCommandHandler(
		FuncSweepUoWFactory(func() commands.SweepUoW { return new(MockUoW) }),
		commands.CreateTransportOrderCommandHandler{})

	err := h.Handle(t.Context(), commands.SweepImportsCommand{})
	require.Error(t, err)
}
