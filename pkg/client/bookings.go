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
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/booker/pkg/openapi"

	"k8s.io/utils/ptr"
)

const (
	// TokenCookie carries the token for partial updates.
	TokenCookie = "token"
)

func jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", string(openapi.MediaTypeJSON))
	header.Set("Accept", string(openapi.MediaTypeJSON))

	return header
}

// tokenHeader sends the token as the service's own clients do, verbatim in
// the authorization header.  No token means no header.
func tokenHeader(header http.Header, token string) http.Header {
	if token != "" {
		header.Set("Authorization", token)
	}

	return header
}

// Ping checks the service is alive, it answers 201.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Ping(), nil, nil)
	if err != nil {
		return fmt.Errorf("pinging service: %w", err)
	}

	if err := expect(ctx, resp, http.StatusCreated); err != nil {
		return fmt.Errorf("pinging service: %w", err)
	}

	return nil
}

// Authenticate returns a copy of the credential with the token set.  Bad
// credentials are reported by the service as a 200 with a reason, that is
// surfaced as ErrMissingToken.
func (c *Client) Authenticate(ctx context.Context, credential openapi.Credential) (*openapi.Credential, error) {
	body, err := json.Marshal(openapi.Credential{
		Username: credential.Username,
		Password: credential.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling credential: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Auth(), jsonHeader(), body)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	if err := expect(ctx, resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	var result openapi.AuthResponse

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling auth response: %w", err)
	}

	if result.Token == nil || *result.Token == "" {
		return nil, fmt.Errorf("%w: %s (trace ID: %s)", ErrMissingToken, ptr.Deref(result.Reason, ""), resp.TraceID())
	}

	out := credential
	out.Token = result.Token

	return &out, nil
}

// Create makes a new booking.
func (c *Client) Create(ctx context.Context, booking openapi.Booking, token string) (*openapi.CreatedBooking, error) {
	body, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("marshaling booking: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Bookings(), tokenHeader(jsonHeader(), token), body)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	if err := expect(ctx, resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	var created openapi.CreatedBooking

	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("unmarshaling booking response: %w", err)
	}

	return &created, nil
}

// Get reads a booking as JSON.  Anything but a 200, including a deleted or
// unknown booking, is a *StatusError.
func (c *Client) Get(ctx context.Context, id int) (*openapi.Booking, error) {
	resp, err := c.GetAs(ctx, id, openapi.MediaTypeJSON)
	if err != nil {
		return nil, err
	}

	if err := expect(ctx, resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("getting booking %d: %w", id, err)
	}

	booking, err := resp.Booking()
	if err != nil {
		return nil, fmt.Errorf("getting booking %d: %w", id, err)
	}

	return booking, nil
}

// GetAs reads a booking in the requested media type.
func (c *Client) GetAs(ctx context.Context, id int, mediaType openapi.MediaType) (*Response, error) {
	header := http.Header{}
	header.Set("Accept", string(mediaType))

	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Booking(id), header, nil)
	if err != nil {
		return nil, fmt.Errorf("getting booking %d: %w", id, err)
	}

	return resp, nil
}

// ListIDs lists booking IDs, every filter is passed through as is.
func (c *Client) ListIDs(ctx context.Context, filters Filters) (*Response, error) {
	header := http.Header{}
	header.Set("Accept", string(openapi.MediaTypeJSON))

	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.BookingsWithQuery(filters.Values()), header, nil)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	return resp, nil
}

// PartialUpdate sends the populated fields of the patch in the media type,
// the service responds in the same media type.
func (c *Client) PartialUpdate(ctx context.Context, patch openapi.Booking, id int, token string, mediaType openapi.MediaType) (*Response, error) {
	body, err := mediaType.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshaling booking: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", string(mediaType))
	header.Set("Accept", string(mediaType))

	if token != "" {
		header.Set("Cookie", (&http.Cookie{Name: TokenCookie, Value: token}).String())
	}

	resp, err := c.doRequest(ctx, http.MethodPatch, c.endpoints.Booking(id), header, body)
	if err != nil {
		return nil, fmt.Errorf("updating booking %d: %w", id, err)
	}

	return resp, nil
}

// Delete removes a booking, the service answers 201 on success.
func (c *Client) Delete(ctx context.Context, id int, token string) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.Booking(id), tokenHeader(http.Header{}, token), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting booking %d: %w", id, err)
	}

	return resp, nil
}
