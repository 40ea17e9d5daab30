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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package client

import (
	"context"

	"github.com/unikorn-cloud/booker/pkg/openapi"
)

// Interface is the set of booking service operations.
type Interface interface {
	// Ping checks the service is alive.
	Ping(ctx context.Context) error
	// Authenticate exchanges credentials for a token.
	Authenticate(ctx context.Context, credential openapi.Credential) (*openapi.Credential, error)
	// Create makes a new booking.
	Create(ctx context.Context, booking openapi.Booking, token string) (*openapi.CreatedBooking, error)
	// Get reads a booking as JSON.
	Get(ctx context.Context, id int) (*openapi.Booking, error)
	// GetAs reads a booking in the requested media type.
	GetAs(ctx context.Context, id int, mediaType openapi.MediaType) (*Response, error)
	// ListIDs lists booking IDs matching the filters.
	ListIDs(ctx context.Context, filters Filters) (*Response, error)
	// PartialUpdate modifies the populated fields of a booking.
	PartialUpdate(ctx context.Context, patch openapi.Booking, id int, token string, mediaType openapi.MediaType) (*Response, error)
	// Delete removes a booking.
	Delete(ctx context.Context, id int, token string) (*Response, error)
}
