package interfaces

import (
	"context"

	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// AccountService represents all account actions.
type AccountService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (entities.OperationResponse, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (entities.OperationResponse, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	PrintStatement(ctx context.Context, printer StatementPrinter) error
}

// StatementPrinter renders the operation history to the sink it owns.
type StatementPrinter interface {
	PrintStatement(operations []entities.Operation) error
}
