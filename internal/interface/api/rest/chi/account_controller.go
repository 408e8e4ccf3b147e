package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/KretovDmitry/bankaccount/internal/application/errs"
	"github.com/KretovDmitry/bankaccount/internal/application/interfaces"
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
	"github.com/KretovDmitry/bankaccount/internal/interface/api/rest/header"
	"github.com/KretovDmitry/bankaccount/internal/interface/api/rest/request"
	"github.com/KretovDmitry/bankaccount/internal/interface/api/rest/response"
	"github.com/KretovDmitry/bankaccount/internal/interface/statement"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type AccountController struct {
	service interfaces.AccountService
	logger  logger.Logger
}

// NewAccountController registers http.Handlers with additional options.
func NewAccountController(service interfaces.AccountService, logger logger.Logger, options ChiServerOptions) chi.Router {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	c := AccountController{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		for _, middleware := range options.Middlewares {
			r.Use(middleware)
		}
		r.Post(options.BaseURL+"/deposit", c.Deposit)
		r.Post(options.BaseURL+"/withdraw", c.Withdraw)
		r.Get(options.BaseURL+"/balance", c.GetBalance)
		r.Get(options.BaseURL+"/statement", c.GetStatement)
	})

	return r
}

// Deposit (POST /api/account/deposit HTTP/1.1).
func (c *AccountController) Deposit(w http.ResponseWriter, r *http.Request) {
	c.apply(w, r, c.service.Deposit)
}

// Withdraw (POST /api/account/withdraw HTTP/1.1).
func (c *AccountController) Withdraw(w http.ResponseWriter, r *http.Request) {
	c.apply(w, r, c.service.Withdraw)
}

type operationFunc func(context.Context, decimal.Decimal) (entities.OperationResponse, error)

const (
	maxBodyBytes = 1 << 10

	// Limits of an accepted amount.
	maxAmountScale         = 18
	maxAmountIntegerDigits = 30
)

func (c *AccountController) apply(w http.ResponseWriter, r *http.Request, op operationFunc) {
	// Check content type.
	if !header.IsApplicationJSONContentType(r) {
		c.ErrorHandlerFunc(w, r, fmt.Errorf("%w: %s", errs.ErrContentType, r.Header.Get("Content-Type")))
		return
	}

	// Read, decode and close request body.
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var payload request.Amount

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		c.ErrorHandlerFunc(w, r, checkJSONDecodeError(err))
		return
	}

	if !payload.Amount.Valid {
		c.ErrorHandlerFunc(w, r, fmt.Errorf("%w: amount is required", errs.ErrInvalidRequest))
		return
	}

	if err := checkAmount(payload.Amount.Decimal); err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	res, err := op(r.Context(), payload.Amount.Decimal)
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	switch res := res.(type) {
	case entities.Success:
		// Status 200.
		c.writeJSON(w, r, response.NewBalance(res.Balance))
	case entities.NegativeAmountError:
		c.ErrorHandlerFunc(w, r, res)
	case entities.NotEnoughMoneyError:
		c.ErrorHandlerFunc(w, r, res)
	default:
		c.ErrorHandlerFunc(w, r, fmt.Errorf("unexpected operation response %T", res))
	}
}

// Get account balance (GET /api/account/balance HTTP/1.1).
func (c *AccountController) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := c.service.Balance(r.Context())
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	c.writeJSON(w, r, response.NewBalance(balance))
}

// Get account statement (GET /api/account/statement HTTP/1.1).
func (c *AccountController) GetStatement(w http.ResponseWriter, r *http.Request) {
	// Render fully before writing so a failure can still change the status.
	var buf bytes.Buffer

	if err := c.service.PrintStatement(r.Context(), statement.NewTablePrinter(&buf)); err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		c.logger.With(r.Context()).Errorf("write statement: %s", err)
	}
}

func (c *AccountController) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.With(r.Context()).Errorf("encode response: %s", err)
	}
}

// ErrorHandlerFunc handles sending of an error in the JSON format,
// writing appropriate status code and handling the failure to marshal that.
func (c *AccountController) ErrorHandlerFunc(w http.ResponseWriter, r *http.Request, err error) {
	errJSON := errs.JSON{Error: err.Error()}
	code := http.StatusInternalServerError

	var (
		negativeAmount entities.NegativeAmountError
		notEnoughMoney entities.NotEnoughMoneyError
	)

	switch {
	// Status Bad Request (400).
	case errors.As(err, &negativeAmount),
		errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrContentType):
		code = http.StatusBadRequest

	// Status Payment Required (402).
	case errors.As(err, &notEnoughMoney):
		code = http.StatusPaymentRequired

	// Status Conflict (409).
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		c.logger.With(r.Context()).Errorf("%s %s: %s", r.Method, r.URL.Path, err)
		errJSON.Error = http.StatusText(code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err = json.NewEncoder(w).Encode(errJSON); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
