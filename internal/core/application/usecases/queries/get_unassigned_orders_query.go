// Package queries contains the read-side operations of the transport
// service. Query handlers read the database directly, bypassing the
// aggregates, and return plain response structs.
package queries

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves all orders still waiting for their
// first vehicle assignment.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates the parameterless query.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse is one order waiting for assignment.
type GetUnassignedOrdersQueryResponse struct {
	ID         kernel.UUID
	FileNumber string
	Customer   string
	CargoType  string
	Amount     float64
}
