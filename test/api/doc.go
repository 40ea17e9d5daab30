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

// Package api provides integration test utilities for the booking API.
//
// # Targets
//
// The suites run against BOOKER_BASE_URL when it is set.  Otherwise an
// in-process fake of the booking service is started, so the suites can run
// anywhere without network access.  The fake reproduces the real service's
// status codes and bodies, including the ones that look like bugs.
//
// # Client
//
// APIClient wraps the typed client from pkg/client and adds test-specific
// behaviour:
//   - W3C trace context propagation for request correlation
//   - Request and response logging to the Ginkgo writer
//   - Validation of every response against the OpenAPI schema
//   - Optional client side rate limiting for shared environments
//
// Status codes are never turned into errors by mutating operations, as the
// suites need to assert on the exact status and body the service returns.
//
// # Fixtures
//
// Bookings created with CreateBookingWithCleanup are deleted when the test
// finishes, whether it passes or fails.
package api
