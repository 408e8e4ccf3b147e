package repositories

import (
	"context"

	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
)

// OperationRepository keeps the append-only operation history.
type OperationRepository interface {
	// Add appends op after every previously stored operation.
	Add(ctx context.Context, op entities.Operation) error
	// FindAll returns the history oldest first; empty history is not an error.
	FindAll(ctx context.Context) ([]entities.Operation, error)
	// GetLast returns the most recent operation, ok is false when there is none.
	GetLast(ctx context.Context) (op entities.Operation, ok bool, err error)
}
