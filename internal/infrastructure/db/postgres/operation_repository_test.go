package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/KretovDmitry/bankaccount/internal/config"
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperationRepository(t *testing.T) {
	l, _ := logger.NewForTest()

	_, err := NewOperationRepository(nil, trmsql.DefaultCtxGetter, l)
	assert.EqualError(t, err, "nil dependency: database")

	_, err = NewOperationRepository(&sql.DB{}, nil, l)
	assert.EqualError(t, err, "nil dependency: transaction getter")

	_, err = NewOperationRepository(&sql.DB{}, trmsql.DefaultCtxGetter, nil)
	assert.EqualError(t, err, "nil dependency: logger")
}

func TestConnectInvalidDSN(t *testing.T) {
	l, _ := logger.NewForTest()

	db, err := Connect(context.Background(), &config.Config{DSN: "postgres://localhost:5432/ledger?sslmode=bogus"}, l)
	assert.Error(t, err)
	assert.Nil(t, db)
}

// Runs against a real database when TEST_DATABASE_URI is set.
func TestOperationRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()
	l, _ := logger.NewForTest()

	db, err := Connect(ctx, &config.Config{DSN: dsn}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	_, err = db.ExecContext(ctx, "TRUNCATE operations")
	require.NoError(t, err)

	repo, err := NewOperationRepository(db, trmsql.DefaultCtxGetter, l)
	require.NoError(t, err)

	_, ok, err := repo.GetLast(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ops, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	trm := manager.Must(trmsql.NewDefaultFactory(db))

	err = trm.Do(ctx, func(ctx context.Context) error {
		if err := repo.Add(ctx, entities.NewDeposit(
			decimal.RequireFromString("100.05"), decimal.RequireFromString("100.05"), 1000)); err != nil {
			return err
		}
		return repo.Add(ctx, entities.NewWithdrawal(
			decimal.RequireFromString("10.0"), decimal.RequireFromString("90.05"), 2000))
	})
	require.NoError(t, err)

	ops, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assert.Equal(t, entities.DEPOSIT, ops[0].Kind)
	assert.Equal(t, "100.05", entities.FormatDecimal(ops[0].Amount))
	assert.Equal(t, int64(1000), ops[0].Time)
	assert.Equal(t, entities.WITHDRAWAL, ops[1].Kind)
	assert.Equal(t, "10.0", entities.FormatDecimal(ops[1].Amount))
	assert.Equal(t, "90.05", entities.FormatDecimal(ops[1].Balance))

	last, ok, err := repo.GetLast(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "90.05", entities.FormatDecimal(last.Balance))
}
