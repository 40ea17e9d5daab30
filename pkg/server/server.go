/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server provides a fake booking service so the contract suites can
// run without network access.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/pkg/server/handler"
)

type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Handler controls the service behaviour.
	Handler handler.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":3001", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 5*time.Second, "How long to wait for requests to drain on shutdown.")

	o.Handler.AddFlags(f)
}

// DefaultOptions are what a flag set would default to, for use in tests.
func DefaultOptions() *Options {
	o := &Options{}

	o.AddFlags(pflag.NewFlagSet("defaults", pflag.ContinueOnError))

	return o
}

type Server struct {
	options *Options
	logger  logr.Logger
	metrics *Metrics
	router  chi.Router
}

func New(options *Options, logger logr.Logger) (*Server, error) {
	h, err := handler.New(&options.Handler)
	if err != nil {
		return nil, fmt.Errorf("creating handler: %w", err)
	}

	s := &Server{
		options: options,
		logger:  logger,
		metrics: NewMetrics(),
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logging)
	router.Use(s.metrics.Middleware)
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	openapi.HandlerWithOptions(h, openapi.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: h.ParameterError,
	})

	s.router = router

	return s, nil
}

// logging attaches a request scoped logger to the context.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.WithValues("method", r.Method, "path", r.URL.Path)

		if traceParent := r.Header.Get("Traceparent"); traceParent != "" {
			logger = logger.WithValues("traceparent", traceParent)
		}

		logger.V(1).Info("request")

		next.ServeHTTP(w, r.WithContext(logr.NewContext(r.Context(), logger)))
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.options.ListenAddress,
		ReadTimeout:       s.options.ReadTimeout,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
		WriteTimeout:      s.options.WriteTimeout,
		Handler:           s.router,
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "address", s.options.ListenAddress)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
