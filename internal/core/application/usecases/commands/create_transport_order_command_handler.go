package commands

import (
	"context"
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// CreateTransportOrderCommandHandler implements the get-or-create order
// endpoint. Calling it twice with the same file number returns the same
// identifier both times and creates exactly one record.
type CreateTransportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateTransportOrderCommandHandler creates the handler.
func NewCreateTransportOrderCommandHandler(uowFactory OrderUoWFactory) CreateTransportOrderCommandHandler {
	return CreateTransportOrderCommandHandler{uowFactory: uowFactory}
}

// Handle looks up an order by the command's file number and returns its
// identifier unchanged when one exists. Otherwise it constructs a new
// order with directly owned child rows, populates it from the command,
// inserts it and returns the new identifier.
func (h CreateTransportOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTransportOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.TransportOrderRepository()

	existing, err := orderRepo.GetByFileNumber(ctx, cmd.FileNumber())
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	order, err := transportorder.NewTransportOrder(
		kernel.NewUUID(),
		cmd.FileNumber(),
		cmd.Customer(),
		transportorder.CargoTypeUnknown,
		0,
		transportorder.DirectOwnership(),
		cmd.Attributes(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, order); err != nil {
		if errors.Is(err, ports.ErrDuplicateFileNumber) {
			// Lost a create race: the unique index on the file number
			// kept a second record out. Return the winner.
			_ = uow.Rollback(ctx)
			return h.getExisting(ctx, cmd.FileNumber())
		}
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return order.ID(), nil
}

func (h CreateTransportOrderCommandHandler) getExisting(
	ctx context.Context,
	fileNumber string,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.TransportOrderRepository().GetByFileNumber(ctx, fileNumber)
	if err != nil {
		return kernel.UUID{}, err
	}

	return existing.ID(), nil
}
