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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/booker/pkg/client"
)

// ExpectStatusCode checks the call succeeded and returned the expected status,
// reporting the trace ID on failure.
func ExpectStatusCode(resp *client.Response, err error, status int) *client.Response {
	GinkgoHelper()

	Expect(err).NotTo(HaveOccurred())
	Expect(resp).To(HaveStatusCode(status), "trace ID: %s", resp.TraceID())

	return resp
}

// ExpectBody checks the status and the exact text of the response.
func ExpectBody(resp *client.Response, err error, status int, body string) *client.Response {
	GinkgoHelper()

	ExpectStatusCode(resp, err, status)
	Expect(resp).To(HaveBody(body), "trace ID: %s", resp.TraceID())

	return resp
}

// ExpectOK checks for a 200.
func ExpectOK(resp *client.Response, err error) *client.Response {
	GinkgoHelper()

	return ExpectStatusCode(resp, err, http.StatusOK)
}

// ExpectSuccess checks for the service's "201 Created" acknowledgement.
func ExpectSuccess(resp *client.Response, err error) *client.Response {
	GinkgoHelper()

	return ExpectBody(resp, err, http.StatusCreated, "Created")
}

func ExpectForbidden(resp *client.Response, err error) *client.Response {
	GinkgoHelper()

	return ExpectBody(resp, err, http.StatusForbidden, "Forbidden")
}

func ExpectMethodNotAllowed(resp *client.Response, err error) *client.Response {
	GinkgoHelper()

	return ExpectBody(resp, err, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func ExpectNotFound(err error) {
	GinkgoHelper()

	Expect(err).To(MatchError(client.ErrUnexpectedStatus))
	Expect(client.IsStatus(err, http.StatusNotFound)).To(BeTrue(), "expected 404, got %v", err)
}
