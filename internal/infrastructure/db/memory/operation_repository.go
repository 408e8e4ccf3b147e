package memory

import (
	"context"
	"sync"

	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/internal/domain/repositories"
)

// OperationRepository keeps the operation history in process memory.
type OperationRepository struct {
	items []entities.Operation
	mu    sync.RWMutex
}

func NewOperationRepository() *OperationRepository {
	return &OperationRepository{}
}

var _ repositories.OperationRepository = (*OperationRepository)(nil)

func (r *OperationRepository) Add(_ context.Context, op entities.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, op)
	return nil
}

func (r *OperationRepository) FindAll(_ context.Context) ([]entities.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops := make([]entities.Operation, len(r.items))
	copy(ops, r.items)
	return ops, nil
}

func (r *OperationRepository) GetLast(_ context.Context) (entities.Operation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return entities.Operation{}, false, nil
	}
	return r.items[len(r.items)-1], true, nil
}
