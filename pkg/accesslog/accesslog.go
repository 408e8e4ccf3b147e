// Package accesslog provides a middleware that records every HTTP request.
package accesslog

import (
	"net/http"
	"time"

	"github.com/KretovDmitry/bankaccount/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns a middleware that logs method, path, status, size and
// duration of each request once it has been served.
func Handler(l logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				l.With(r.Context(),
					"duration", time.Since(start).Milliseconds(),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
				).Infof("%s %s %s", r.Method, r.URL.Path, r.Proto)
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(f)
	}
}
