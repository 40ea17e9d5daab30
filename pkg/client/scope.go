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
	"errors"
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/booker/pkg/openapi"
)

// WithBooking creates a booking, runs the callback with it, then deletes it.
// The delete happens however the callback exits, panics included, and its
// failure is joined with the callback's error.  Deletion uses a context that
// is not canceled with the parent so a timed out test still cleans up.
func WithBooking(ctx context.Context, c Interface, booking openapi.Booking, token string, callback func(*openapi.CreatedBooking) error) (err error) {
	created, err := c.Create(ctx, booking, token)
	if err != nil {
		return err
	}

	defer func() {
		if derr := deleteBooking(context.WithoutCancel(ctx), c, created.BookingID, token); derr != nil {
			err = errors.Join(err, derr)
		}
	}()

	return callback(created)
}

func deleteBooking(ctx context.Context, c Interface, id int, token string) error {
	resp, err := c.Delete(ctx, id, token)
	if err != nil {
		return fmt.Errorf("cleaning up booking %d: %w", id, err)
	}

	if err := expect(ctx, resp, http.StatusCreated); err != nil {
		return fmt.Errorf("cleaning up booking %d: %w", id, err)
	}

	return nil
}
