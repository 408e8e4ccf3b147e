package rest

import (
	"net/http"

	"github.com/KretovDmitry/bankaccount/pkg/accesslog"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nanmu42/gzip"
)

// InitChi creates the root router with the common middleware stack.
func InitChi(logger logger.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(accesslog.Handler(logger))
	router.Use(middleware.Recoverer)
	router.Use(gzip.DefaultHandler().WrapHandler)

	return router
}

type (
	MiddlewareFunc func(http.Handler) http.Handler

	ChiServerOptions struct {
		BaseRouter  chi.Router
		BaseURL     string
		Middlewares []MiddlewareFunc
	}
)
