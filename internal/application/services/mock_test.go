package services

import (
	"context"
	"sync"

	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/internal/domain/repositories"
)

// Lock in case of t.Parallel call.
type mockRepository struct {
	ops    []entities.Operation
	calls  []string
	err    error
	addErr error
	mu     sync.Mutex
}

var _ repositories.OperationRepository = (*mockRepository)(nil)

func (m *mockRepository) Add(_ context.Context, op entities.Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "Add")
	if m.err != nil {
		return m.err
	}
	if m.addErr != nil {
		return m.addErr
	}
	m.ops = append(m.ops, op)
	return nil
}

func (m *mockRepository) FindAll(_ context.Context) ([]entities.Operation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "FindAll")
	if m.err != nil {
		return nil, m.err
	}
	return append([]entities.Operation(nil), m.ops...), nil
}

func (m *mockRepository) GetLast(_ context.Context) (entities.Operation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "GetLast")
	if m.err != nil {
		return entities.Operation{}, false, m.err
	}
	if len(m.ops) == 0 {
		return entities.Operation{}, false, nil
	}
	return m.ops[len(m.ops)-1], true, nil
}

func (m *mockRepository) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockRepository) Operations() []entities.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.Operation(nil), m.ops...)
}

type mockPrinter struct {
	received [][]entities.Operation
	err      error
}

func (m *mockPrinter) PrintStatement(operations []entities.Operation) error {
	if m.err != nil {
		return m.err
	}
	m.received = append(m.received, operations)
	return nil
}

type mockTransactor struct {
	calls int
	err   error
}

func (m *mockTransactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}
