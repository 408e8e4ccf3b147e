package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/KretovDmitry/bankaccount/internal/application/errs"
	"github.com/shopspring/decimal"
)

func checkJSONDecodeError(err error) error {
	var e *json.UnmarshalTypeError
	if errors.As(err, &e) {
		return fmt.Errorf("%w: %s must be of type %s, got %s",
			errs.ErrInvalidRequest, e.Field, e.Type, e.Value)
	}
	var s *json.SyntaxError
	if errors.As(err, &s) {
		return fmt.Errorf("%w: malformed JSON at offset %d", errs.ErrInvalidRequest, s.Offset)
	}
	var m *http.MaxBytesError
	if errors.As(err, &m) {
		return fmt.Errorf("%w: body exceeds %d bytes", errs.ErrInvalidRequest, m.Limit)
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty body", errs.ErrInvalidRequest)
	}

	return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err)
}

// checkAmount rejects amounts whose scale or magnitude would make
// every later balance and statement line arbitrarily long.
func checkAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -maxAmountScale {
		return fmt.Errorf("%w: amount has more than %d decimal places",
			errs.ErrInvalidRequest, maxAmountScale)
	}
	if exp > maxAmountIntegerDigits || d.NumDigits()+int(exp) > maxAmountIntegerDigits {
		return fmt.Errorf("%w: amount has more than %d integer digits",
			errs.ErrInvalidRequest, maxAmountIntegerDigits)
	}

	return nil
}
