package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{name: "integer literal", in: decimal.RequireFromString("2000"), want: "2000"},
		{name: "two fraction digits", in: decimal.RequireFromString("100.05"), want: "100.05"},
		{name: "trailing zero kept", in: decimal.RequireFromString("10.0"), want: "10.0"},
		{name: "zero with scale", in: decimal.RequireFromString("0.0"), want: "0.0"},
		{name: "zero", in: decimal.Zero, want: "0"},
		{name: "negative", in: decimal.RequireFromString("-7893123120.0"), want: "-7893123120.0"},
		{name: "small value stays plain", in: decimal.RequireFromString("0.0000000012"), want: "0.0000000012"},
		{name: "positive exponent", in: decimal.New(12, 3), want: "12000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimal(tt.in))
		})
	}
}

func TestFormatDecimalAfterArithmetic(t *testing.T) {
	balance := decimal.RequireFromString("100.05").
		Add(decimal.RequireFromString("2000")).
		Add(decimal.RequireFromString("30000")).
		Sub(decimal.RequireFromString("1.02"))

	assert.Equal(t, "32099.03", FormatDecimal(balance))
}

func TestOperationSign(t *testing.T) {
	amount := decimal.NewFromInt(5)

	assert.Equal(t, "+", NewDeposit(amount, amount, 0).Sign())
	assert.Equal(t, "-", NewWithdrawal(amount, decimal.Zero, 0).Sign())
}

func TestOperationTimestamp(t *testing.T) {
	op := NewDeposit(decimal.NewFromInt(1), decimal.NewFromInt(1), 561294300999)

	ts := op.Timestamp()

	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, int64(561294300), ts.Unix())
	assert.Zero(t, ts.Nanosecond())
}

func TestResponseReasons(t *testing.T) {
	negative := NegativeAmountError{Amount: decimal.RequireFromString("-10.0")}
	assert.Equal(t, "Amount should be positive : -10.0", negative.Reason())
	assert.EqualError(t, negative, negative.Reason())

	notEnough := NotEnoughMoneyError{
		Amount:  decimal.RequireFromString("10.0"),
		Balance: decimal.Zero,
	}
	assert.Equal(t, "Tried to withdraw 10.0 but the account contains only 0", notEnough.Reason())
	assert.EqualError(t, notEnough, notEnough.Reason())
}
