// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package xlhttp provides an HTTP API for the xldt package. Every
// operation is available as a GET endpoint that returns JSON.
package xlhttp

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cloudeng.io/xldt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
)

// Options configures the router returned by NewRouter.
type Options struct {
	// WeekdayType and WeekType are used when a request does not
	// specify a return type.
	WeekdayType xldt.ReturnType
	WeekType    xldt.ReturnType
	// Weekend is used when a request does not specify a weekend.
	Weekend xldt.WeekendMask
	// AllowedOrigins for CORS requests, none are allowed if empty.
	AllowedOrigins []string
	// RequestsPerSecond limits the requests allowed per client IP
	// address, zero means no limit.
	RequestsPerSecond int
}

// DefaultOptions returns the Options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		WeekdayType: xldt.SundayOne,
		WeekType:    xldt.SundayOne,
		Weekend:     xldt.DefaultWeekend,
	}
}

// RequestIDHeader is the response header containing the id assigned
// to each request.
const RequestIDHeader = "X-Request-Id"

// NewRouter returns an http.Handler for the API. Each request is logged
// to logger.
func NewRouter(logger *slog.Logger, opts Options) http.Handler {
	if opts.WeekdayType == 0 {
		opts.WeekdayType = xldt.SundayOne
	}
	if opts.WeekType == 0 {
		opts.WeekType = xldt.SundayOne
	}
	if opts.Weekend == 0 {
		opts.Weekend = xldt.DefaultWeekend
	}
	h := &handlers{opts: opts}

	router := chi.NewRouter()
	router.Use(requestLogger(logger))
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept"},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}
	if opts.RequestsPerSecond > 0 {
		router.Use(httprate.LimitByIP(opts.RequestsPerSecond, time.Second))
	}

	router.Get("/health", h.health)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/date", h.date)
		r.Get("/parts", h.parts)
		r.Get("/time", h.timeOfDay)
		r.Get("/weekday", h.weekday)
		r.Get("/week", h.week)
		r.Get("/isoweek", h.isoweek)
		r.Get("/diff", h.diff)
		r.Get("/weekend", h.weekend)
	})
	return router
}

func requestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start))
		})
	}
}

// Serve serves handler on the specified address until ctx is canceled,
// at which point the server is shutdown, allowing up to grace for
// in-flight requests to complete.
func Serve(ctx context.Context, logger *slog.Logger, ln net.Listener, handler http.Handler, grace time.Duration) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "address", ln.Addr().String())
		errCh <- server.Serve(ln)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("waiting for pending requests to complete", "grace", grace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
