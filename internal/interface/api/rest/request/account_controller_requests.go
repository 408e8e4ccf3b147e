package request

import "github.com/shopspring/decimal"

// Amount is the body of deposit and withdrawal requests.
// The amount may be sent as a JSON string or number; its scale is kept.
type Amount struct {
	Amount decimal.NullDecimal `json:"amount"`
}
