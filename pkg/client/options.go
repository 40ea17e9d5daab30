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
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/time/rate"
)

// Option configures a client.
type Option func(o *options)

type options struct {
	// httpClient is copied, never modified.
	httpClient *http.Client

	// timeout, if set, overrides the HTTP client's timeout.
	timeout time.Duration

	// middlewares wrap the HTTP client's transport in order.
	middlewares []TransportMiddleware

	// limiter, if set, throttles all requests.
	limiter *rate.Limiter

	// schema, if set, validates every response.
	schema *openapi3.T
}

// WithHTTPClient uses a copy of the HTTP client as the base for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout bounds every request including reading the response.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithTransportMiddleware adds a middleware to the transport chain.
func WithTransportMiddleware(middleware TransportMiddleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middleware)
	}
}

// WithRateLimit limits the request rate to the service.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithResponseValidation checks every response against the document.
func WithResponseValidation(schema *openapi3.T) Option {
	return func(o *options) {
		o.schema = schema
	}
}

func newOptions(optionFuncs ...Option) *options {
	o := &options{}

	for _, optionFunc := range optionFuncs {
		optionFunc(o)
	}

	return o
}

// client builds the HTTP client for the options.  The rate limit is the
// outermost middleware.
func (o *options) client() *http.Client {
	client := &http.Client{}

	if o.httpClient != nil {
		*client = *o.httpClient
	}

	if o.timeout > 0 {
		client.Timeout = o.timeout
	}

	middlewares := o.middlewares

	if o.limiter != nil {
		middlewares = append([]TransportMiddleware{NewRateLimitMiddleware(o.limiter)}, middlewares...)
	}

	client.Transport = Chain(client.Transport, middlewares...)

	return client
}
