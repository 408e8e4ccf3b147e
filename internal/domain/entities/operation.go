package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationKind string

const (
	DEPOSIT    OperationKind = "DEPOSIT"
	WITHDRAWAL OperationKind = "WITHDRAWAL"
)

// Operation is one recorded ledger event. It is created once per
// successful deposit or withdrawal and never changed afterwards.
type Operation struct {
	Kind   OperationKind
	Amount decimal.Decimal
	// Account balance right after the operation was applied.
	Balance decimal.Decimal
	// Milliseconds since the Unix epoch, UTC.
	Time int64
}

func NewDeposit(amount, balance decimal.Decimal, millis int64) Operation {
	return Operation{
		Kind:    DEPOSIT,
		Amount:  amount,
		Balance: balance,
		Time:    millis,
	}
}

func NewWithdrawal(amount, balance decimal.Decimal, millis int64) Operation {
	return Operation{
		Kind:    WITHDRAWAL,
		Amount:  amount,
		Balance: balance,
		Time:    millis,
	}
}

// Sign returns the prefix used when the amount is shown to a reader.
func (o Operation) Sign() string {
	if o.Kind == WITHDRAWAL {
		return "-"
	}
	return "+"
}

// Timestamp returns the operation time truncated to whole seconds, in UTC.
func (o Operation) Timestamp() time.Time {
	return time.Unix(o.Time/1000, 0).UTC()
}

// FormatDecimal prints d in plain notation keeping the scale it was
// created with, so "10.0" stays "10.0" and "2000" stays "2000".
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
