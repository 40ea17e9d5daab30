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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/pkg/server"
)

// APIClient is the booking client configured for testing, along with the
// fake service it talks to if no real one was configured.
type APIClient struct {
	*client.Client

	config *TestConfig
	fake   *httptest.Server
}

// NewAPIClient loads the test configuration and creates a client from it.
func NewAPIClient() (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	return NewAPIClientWithConfig(config)
}

// NewAPIClientWithConfig creates a client, starting a fake service when the
// configuration has no base URL.  Callers must Close the client.
func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	c := &APIClient{
		config: config,
	}

	baseURL := config.BaseURL

	if config.UseFake() {
		fake, err := newFakeService(config)
		if err != nil {
			return nil, err
		}

		c.fake = fake
		baseURL = fake.URL
	}

	options := []client.Option{
		client.WithTimeout(config.RequestTimeout),
		client.WithTransportMiddleware(withGinkgoLogger),
		client.WithTransportMiddleware(client.NewLoggingMiddleware(client.LoggingOptions{
			Requests:  config.LogRequests,
			Responses: config.LogResponses,
		})),
	}

	if config.RateLimit > 0 {
		options = append(options, client.WithRateLimit(config.RateLimit, 1))
	}

	if config.ValidateResponses {
		schema, err := openapi.Schema()
		if err != nil {
			c.Close()
			return nil, err
		}

		options = append(options, client.WithResponseValidation(schema))
	}

	cli, err := client.New(baseURL, options...)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("creating client: %w", err)
	}

	c.Client = cli

	return c, nil
}

// newFakeService starts an in-process booking service that accepts the
// configured admin credentials.
func newFakeService(config *TestConfig) (*httptest.Server, error) {
	options := server.DefaultOptions()
	options.Handler.AdminUsername = config.AdminUsername
	options.Handler.AdminPassword = config.AdminPassword

	s, err := server.New(options, ginkgo.GinkgoLogr.WithName("fake"))
	if err != nil {
		return nil, fmt.Errorf("creating fake service: %w", err)
	}

	return httptest.NewServer(s.Handler()), nil
}

// withGinkgoLogger routes client logs to the Ginkgo writer unless the caller
// supplied a logger of their own.
func withGinkgoLogger(next http.RoundTripper) http.RoundTripper {
	return client.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if _, err := logr.FromContext(req.Context()); err != nil {
			req = req.WithContext(logr.NewContext(req.Context(), ginkgo.GinkgoLogr))
		}

		return next.RoundTrip(req)
	})
}

func (c *APIClient) Config() *TestConfig {
	return c.config
}

// IsFake returns true if the client is talking to an in-process service.
func (c *APIClient) IsFake() bool {
	return c.fake != nil
}

// Close stops the fake service, if any.
func (c *APIClient) Close() {
	if c.fake != nil {
		c.fake.Close()
	}
}
