package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KretovDmitry/bankaccount/internal/application/errs"
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/internal/domain/repositories"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type OperationRepository struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	logger logger.Logger
}

func NewOperationRepository(db *sql.DB, getter *trmsql.CtxGetter, logger logger.Logger) (*OperationRepository, error) {
	if db == nil {
		return nil, errors.New("nil dependency: database")
	}
	if getter == nil {
		return nil, errors.New("nil dependency: transaction getter")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}

	return &OperationRepository{db: db, getter: getter, logger: logger}, nil
}

var _ repositories.OperationRepository = (*OperationRepository)(nil)

func (r *OperationRepository) Add(ctx context.Context, op entities.Operation) error {
	const query = `
		INSERT INTO operations (id, kind, amount, balance, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, uuid.New(), string(op.Kind), op.Amount, op.Balance, op.Time)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: operation id", errs.ErrConflict)
		}
		return fmt.Errorf("insert operation: %w", err)
	}

	return nil
}

func (r *OperationRepository) FindAll(ctx context.Context) ([]entities.Operation, error) {
	const query = "SELECT kind, amount, balance, created_at FROM operations ORDER BY seq"

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select operations: %w", err)
	}

	defer func() {
		if err = rows.Close(); err != nil {
			r.logger.Errorf("close rows: %s", err)
		}
	}()

	operations := make([]entities.Operation, 0)

	for rows.Next() {
		var op entities.Operation
		if err = rows.Scan(&op.Kind, &op.Amount, &op.Balance, &op.Time); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}

		operations = append(operations, op)
	}

	// Rows.Err will report the last error encountered by Rows.Scan.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return operations, nil
}

func (r *OperationRepository) GetLast(ctx context.Context) (entities.Operation, bool, error) {
	const query = `
		SELECT kind, amount, balance, created_at FROM operations
		ORDER BY seq DESC
		LIMIT 1;
	`

	var op entities.Operation

	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query).
		Scan(&op.Kind, &op.Amount, &op.Balance, &op.Time)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Operation{}, false, nil
		}
		return entities.Operation{}, false, fmt.Errorf("select last operation: %w", err)
	}

	return op, true, nil
}
