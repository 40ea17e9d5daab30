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

package api

import (
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"

	"github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/openapi"
)

// HaveStatusCode succeeds if the response has the given status code.
func HaveStatusCode(status int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *client.Response) (bool, error) {
		return resp != nil && resp.StatusCode == status, nil
	}).WithTemplate("Expected response {{.To}} have status code {{.Data}}\n{{format .Actual 1}}", status)
}

// HaveBody succeeds if the response body is exactly the given text.
func HaveBody(body string) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *client.Response) (bool, error) {
		return resp != nil && resp.Text() == body, nil
	}).WithTemplate("Expected response {{.To}} have body {{.Data}}\n{{format .Actual 1}}", body)
}

// HaveContentType succeeds if the response media type, ignoring parameters,
// is the given one.
func HaveContentType(mediaType openapi.MediaType) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *client.Response) (bool, error) {
		if resp == nil {
			return false, nil
		}

		actual, err := resp.MediaType()
		if err != nil {
			//nolint:nilerr
			return false, nil
		}

		return actual == mediaType, nil
	}).WithTemplate("Expected response {{.To}} have content type {{.Data}}\n{{format .Actual 1}}", mediaType)
}
