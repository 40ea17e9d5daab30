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
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is raised when authentication succeeds at the
	// HTTP level but the service withholds a token.
	ErrMissingToken = errors.New("authentication response contains no token")

	// ErrUnexpectedStatus is the root of all status code errors.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// StatusError is returned when an operation's status code is not the one
// the service documents for success.  It carries enough to find the request
// in the service logs.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// IsStatus returns true if the error chain contains a status error with
// the given actual status code.
func IsStatus(err error, status int) bool {
	var serr *StatusError

	return errors.As(err, &serr) && serr.Actual == status
}
