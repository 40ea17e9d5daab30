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
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// validator checks responses against an OpenAPI description of the service.
type validator struct {
	router routers.Router

	// basePath is where the service is mounted, the document's paths
	// are relative to it.
	basePath string
}

func newValidator(schema *openapi3.T, basePath string) (*validator, error) {
	router, err := legacy.NewRouter(schema)
	if err != nil {
		return nil, fmt.Errorf("creating schema router: %w", err)
	}

	return &validator{
		router:   router,
		basePath: strings.TrimSuffix(basePath, "/"),
	}, nil
}

// validate checks the status code, content type and body of the response are
// documented for the request's operation.
func (v *validator) validate(ctx context.Context, req *http.Request, resp *Response) error {
	// Route on a copy so the document's paths line up with the request.
	routed := req.Clone(ctx)
	routed.URL.Path = strings.TrimPrefix(req.URL.Path, v.basePath)
	routed.URL.RawPath = ""

	route, params, err := v.router.FindRoute(routed)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    routed,
			PathParams: params,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(resp.Body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("validating %s %s response (trace ID: %s): %w", req.Method, req.URL.Path, resp.TraceID(), err)
	}

	return nil
}
