package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OperationResponse is the outcome of a deposit or withdrawal.
// The set of implementations is closed: Success, NegativeAmountError
// and NotEnoughMoneyError.
type OperationResponse interface {
	operationResponse()
}

type Success struct {
	Balance decimal.Decimal
}

// Rejected amount: zero or negative.
type NegativeAmountError struct {
	Amount decimal.Decimal
}

// Withdrawal that would leave the account below zero.
type NotEnoughMoneyError struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

func (Success) operationResponse() {}
func (NegativeAmountError) operationResponse() {}
func (NotEnoughMoneyError) operationResponse() {}

func (e NegativeAmountError) Reason() string {
	return fmt.Sprintf("Amount should be positive : %s", FormatDecimal(e.Amount))
}

func (e NegativeAmountError) Error() string {
	return e.Reason()
}

func (e NotEnoughMoneyError) Reason() string {
	return fmt.Sprintf("Tried to withdraw %s but the account contains only %s",
		FormatDecimal(e.Amount), FormatDecimal(e.Balance))
}

func (e NotEnoughMoneyError) Error() string {
	return e.Reason()
}
