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

// Package client is a typed client for the booking service.  Every operation
// is a single round trip, there are no retries and nothing is cached.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
)

// Client talks to a booking service.
type Client struct {
	baseURL   string
	client    *http.Client
	endpoints *Endpoints
	validator *validator
}

// Ensure the client implements the interface.
var _ Interface = &Client{}

// New creates a client for the service rooted at the base URL.
func New(baseURL string, optionFuncs ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidBaseURL, baseURL)
	}

	o := newOptions(optionFuncs...)

	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    o.client(),
		endpoints: NewEndpoints(),
	}

	if o.schema != nil {
		v, err := newValidator(o.schema, u.Path)
		if err != nil {
			return nil, err
		}

		c.validator = v
	}

	return c, nil
}

// BaseURL returns the root of the service.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs a single round trip and reads the whole response.  The
// status code is not checked, that is left to the caller.
func (c *Client) doRequest(ctx context.Context, method, path string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader

	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set(TraceParentHeader, traceParent)
	req.Header.Set(TraceStateHeader, traceState)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", ExtractTraceID(traceParent), err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", ExtractTraceID(traceParent), err)
	}

	response := &Response{
		Method:      method,
		Path:        path,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		TraceParent: traceParent,
	}

	if c.validator != nil {
		if err := c.validator.validate(ctx, req, response); err != nil {
			return nil, err
		}
	}

	return response, nil
}

// expect checks the response status, logging the trace context on failure so
// the request can be found in the service logs.
func expect(ctx context.Context, resp *Response, status int) error {
	if err := resp.Expect(status); err != nil {
		logr.FromContextOrDiscard(ctx).Info("unexpected status",
			"method", resp.Method,
			"path", resp.Path,
			"expected", status,
			"status", resp.StatusCode,
			"body", resp.Text(),
			"traceID", resp.TraceID(),
		)

		return err
	}

	return nil
}
