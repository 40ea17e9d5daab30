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
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/booker/pkg/openapi"
)

// Response is a fully read HTTP response.  Operations whose status codes are
// themselves under test return one of these rather than a decoded model.
type Response struct {
	// Method and Path identify the request.
	Method string
	Path   string

	StatusCode int
	Header     http.Header
	Body       []byte

	// TraceParent is the W3C trace context sent with the request.
	TraceParent string
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// ContentType returns the raw content type header.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// MediaType returns the negotiated media type of the body.
func (r *Response) MediaType() (openapi.MediaType, error) {
	return openapi.ParseMediaType(r.ContentType())
}

// TraceID returns the trace ID to search for in the service logs.
func (r *Response) TraceID() string {
	return ExtractTraceID(r.TraceParent)
}

// Decode unmarshals the body according to its content type.
func (r *Response) Decode(v any) error {
	mediaType, err := r.MediaType()
	if err != nil {
		return fmt.Errorf("decoding %q response: %w", r.ContentType(), err)
	}

	return r.DecodeAs(mediaType, v)
}

// DecodeAs unmarshals the body as the media type regardless of the content
// type header, for services that mislabel what they send.
func (r *Response) DecodeAs(mediaType openapi.MediaType, v any) error {
	if err := mediaType.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s response: %w", mediaType, err)
	}

	return nil
}

// Booking decodes a booking from the body.
func (r *Response) Booking() (*openapi.Booking, error) {
	var booking openapi.Booking

	if err := r.Decode(&booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// BookingAs decodes a booking from the body as the media type.
func (r *Response) BookingAs(mediaType openapi.MediaType) (*openapi.Booking, error) {
	var booking openapi.Booking

	if err := r.DecodeAs(mediaType, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// BookingRefs decodes a booking listing from the body.
func (r *Response) BookingRefs() (openapi.BookingRefs, error) {
	var refs openapi.BookingRefs

	if err := r.Decode(&refs); err != nil {
		return nil, err
	}

	return refs, nil
}

// Expect returns an error if the status code isn't the expected one.
func (r *Response) Expect(status int) error {
	if r.StatusCode == status {
		return nil
	}

	return &StatusError{
		Method:   r.Method,
		Path:     r.Path,
		Expected: status,
		Actual:   r.StatusCode,
		Body:     r.Text(),
		TraceID:  r.TraceID(),
	}
}
