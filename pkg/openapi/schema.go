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

package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go tool oapi-codegen -config types.config.yaml server.spec.yaml
//go:generate go tool oapi-codegen -config router.config.yaml server.spec.yaml

//go:embed server.spec.yaml
var spec []byte

//nolint:gochecknoglobals
var (
	schemaOnce sync.Once
	schema     *openapi3.T
	schemaErr  error
)

// Schema returns the OpenAPI description of the booking service.  The document
// is parsed and validated once, the result is shared so callers must not modify it.
func Schema() (*openapi3.T, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = loadSchema()
	})

	return schema, schemaErr
}

func loadSchema() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return doc, nil
}
