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

package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/time/rate"
)

// TransportMiddleware wraps a round tripper with extra behaviour.
type TransportMiddleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to a round tripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain wraps the transport in the middlewares, the first middleware is
// the outermost, so sees the request first and the response last.
func Chain(transport http.RoundTripper, middlewares ...TransportMiddleware) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		transport = middlewares[i](transport)
	}

	return transport
}

// LoggingOptions controls what the logging middleware emits.
type LoggingOptions struct {
	// Requests logs the method, path, status and duration of every request.
	Requests bool
	// Responses additionally logs response bodies.
	Responses bool
}

// NewLoggingMiddleware logs requests using the logger attached to the request
// context.  Transport errors are always logged.
func NewLoggingMiddleware(options LoggingOptions) TransportMiddleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			log := logr.FromContextOrDiscard(req.Context()).WithValues(
				"method", req.Method,
				"path", req.URL.RequestURI(),
				"traceparent", req.Header.Get(TraceParentHeader),
			)

			start := time.Now()

			resp, err := next.RoundTrip(req)

			duration := time.Since(start)

			if err != nil {
				log.Error(err, "http request failed", "duration", duration)
				return nil, err
			}

			if options.Requests {
				log.Info("http request", "status", resp.StatusCode, "duration", duration)
			}

			if options.Responses {
				body, err := io.ReadAll(resp.Body)
				resp.Body.Close()

				if err != nil {
					log.Error(err, "reading response body", "status", resp.StatusCode)
					return nil, fmt.Errorf("reading response body: %w", err)
				}

				resp.Body = io.NopCloser(bytes.NewReader(body))

				if len(body) > 0 {
					log.Info("http response", "status", resp.StatusCode, "body", string(body))
				}
			}

			return resp, nil
		})
	}
}

// NewRateLimitMiddleware blocks each request until the limiter allows it, or
// the request context is done.
func NewRateLimitMiddleware(limiter *rate.Limiter) TransportMiddleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, fmt.Errorf("rate limiting request: %w", err)
			}

			return next.RoundTrip(req)
		})
	}
}
