package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KretovDmitry/bankaccount/internal/application/interfaces"
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/internal/domain/repositories"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	"github.com/shopspring/decimal"
)

// Transactor runs fn so that every repository call made with the
// context it receives belongs to one unit of work.
// *manager.Manager from go-transaction-manager implements it.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type nopTransactor struct{}

func (nopTransactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Option configures an Account.
type Option func(*Account)

// WithClock sets the source of operation timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		a.now = now
	}
}

// WithTransactor makes balance read and operation append run in one transaction.
func WithTransactor(trm Transactor) Option {
	return func(a *Account) {
		a.trm = trm
	}
}

// Account validates and applies operations on the single ledger account.
// It owns no storage: the history lives in the operation repository.
type Account struct {
	repo   repositories.OperationRepository
	trm    Transactor
	now    func() time.Time
	logger logger.Logger

	// Serializes read-then-append.
	mu sync.Mutex
}

func NewAccount(repo repositories.OperationRepository, logger logger.Logger, opts ...Option) (*Account, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: operation repository")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}

	a := &Account{
		repo:   repo,
		trm:    nopTransactor{},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.trm == nil {
		return nil, errors.New("nil dependency: transactor")
	}
	if a.now == nil {
		return nil, errors.New("nil dependency: clock")
	}

	return a, nil
}

var _ interfaces.AccountService = (*Account)(nil)

// Deposit adds a positive amount to the account.
func (a *Account) Deposit(ctx context.Context, amount decimal.Decimal) (entities.OperationResponse, error) {
	if !amount.IsPositive() {
		return a.reject(ctx, entities.DEPOSIT, entities.NegativeAmountError{Amount: amount}), nil
	}

	var op entities.Operation

	err := a.apply(ctx, func(ctx context.Context) error {
		balance, err := a.balance(ctx)
		if err != nil {
			return err
		}

		op = entities.NewDeposit(amount, balance.Add(amount), a.now().UnixMilli())
		if err = a.repo.Add(ctx, op); err != nil {
			return fmt.Errorf("add deposit: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logApplied(ctx, op)

	return entities.Success{Balance: op.Balance}, nil
}

// Withdraw takes a positive amount from the account if the balance covers it.
func (a *Account) Withdraw(ctx context.Context, amount decimal.Decimal) (entities.OperationResponse, error) {
	if !amount.IsPositive() {
		return a.reject(ctx, entities.WITHDRAWAL, entities.NegativeAmountError{Amount: amount}), nil
	}

	var (
		res entities.OperationResponse
		op  entities.Operation
	)

	err := a.apply(ctx, func(ctx context.Context) error {
		balance, err := a.balance(ctx)
		if err != nil {
			return err
		}

		newBalance := balance.Sub(amount)
		if newBalance.IsNegative() {
			res = a.reject(ctx, entities.WITHDRAWAL, entities.NotEnoughMoneyError{
				Amount:  amount,
				Balance: balance,
			})
			return nil
		}

		op = entities.NewWithdrawal(amount, newBalance, a.now().UnixMilli())
		if err = a.repo.Add(ctx, op); err != nil {
			return fmt.Errorf("add withdrawal: %w", err)
		}

		res = entities.Success{Balance: newBalance}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := res.(entities.Success); ok {
		a.logApplied(ctx, op)
	}

	return res, nil
}

// Balance returns the balance left by the last operation, zero if none.
func (a *Account) Balance(ctx context.Context) (decimal.Decimal, error) {
	return a.balance(ctx)
}

// PrintStatement hands the whole history, oldest first, to printer.
func (a *Account) PrintStatement(ctx context.Context, printer interfaces.StatementPrinter) error {
	if printer == nil {
		return errors.New("nil dependency: statement printer")
	}

	operations, err := a.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find operations: %w", err)
	}

	if err = printer.PrintStatement(operations); err != nil {
		return fmt.Errorf("print statement: %w", err)
	}

	return nil
}

func (a *Account) balance(ctx context.Context) (decimal.Decimal, error) {
	last, ok, err := a.repo.GetLast(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get last operation: %w", err)
	}
	if !ok {
		return decimal.Zero, nil
	}

	return last.Balance, nil
}

func (a *Account) apply(ctx context.Context, fn func(ctx context.Context) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.trm.Do(ctx, fn)
}

func (a *Account) logApplied(ctx context.Context, op entities.Operation) {
	a.logger.With(ctx,
		"kind", op.Kind,
		"amount", entities.FormatDecimal(op.Amount),
		"balance", entities.FormatDecimal(op.Balance),
	).Info("operation applied")
}

// rejection is an error variant of entities.OperationResponse.
type rejection interface {
	entities.OperationResponse
	error
}

func (a *Account) reject(ctx context.Context, kind entities.OperationKind, r rejection) entities.OperationResponse {
	a.logger.With(ctx, "kind", kind).Warnf("operation rejected: %s", r)
	return r
}
