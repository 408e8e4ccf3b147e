package response

import (
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/shopspring/decimal"
)

type Balance struct {
	Balance string `json:"balance"`
}

func NewBalance(balance decimal.Decimal) Balance {
	return Balance{Balance: entities.FormatDecimal(balance)}
}
