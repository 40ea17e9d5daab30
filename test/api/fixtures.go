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
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/openapi"
)

// AdminToken authenticates with the configured admin credentials and returns
// the issued token.
func AdminToken(ctx context.Context, c *APIClient) string {
	GinkgoHelper()

	credential, err := c.Authenticate(ctx, openapi.Credential{
		Username: c.Config().AdminUsername,
		Password: c.Config().AdminPassword,
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(credential.Token).NotTo(BeNil())

	return *credential.Token
}

// CreateBookingWithCleanup creates a booking and schedules its deletion at the
// end of the test.  Cleanup runs whether the test passes or fails.
func CreateBookingWithCleanup(ctx context.Context, c *APIClient, booking openapi.Booking, token string) *openapi.CreatedBooking {
	GinkgoHelper()

	created, err := c.Create(ctx, booking, token)
	Expect(err).NotTo(HaveOccurred())
	Expect(created.BookingID).To(BeNumerically(">", 0))

	GinkgoWriter.Printf("Created booking: %d\n", created.BookingID)

	DeleteBookingOnCleanup(c, created.BookingID, token)

	return created
}

// DeleteBookingOnCleanup schedules deletion of a booking at the end of the
// test.  A booking the test already deleted is tolerated.
func DeleteBookingOnCleanup(c client.Interface, id int, token string) {
	DeferCleanup(func(ctx SpecContext) {
		deleteBooking(ctx, c, id, token)
	})
}

// CreateBookingsWithCleanup creates a number of random bookings, each of which
// is deleted at the end of the test.
func CreateBookingsWithCleanup(ctx context.Context, c *APIClient, token string, count int) []*openapi.CreatedBooking {
	GinkgoHelper()

	bookings := make([]*openapi.CreatedBooking, 0, count)

	for range count {
		bookings = append(bookings, CreateBookingWithCleanup(ctx, c, NewBookingPayload().Build(), token))
	}

	return bookings
}

// deleteBooking removes a booking, tolerating it already being gone.
func deleteBooking(ctx context.Context, c client.Interface, id int, token string) {
	GinkgoWriter.Printf("Cleaning up booking: %d\n", id)

	resp, err := c.Delete(ctx, id, token)
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to delete booking %d: %v\n", id, err)
		return
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		GinkgoWriter.Printf("Successfully deleted booking: %d\n", id)
	case http.StatusMethodNotAllowed:
		GinkgoWriter.Printf("Booking %d already deleted\n", id)
	default:
		GinkgoWriter.Printf("Warning: Failed to delete booking %d: %v\n", id, resp.Expect(http.StatusCreated))
	}
}

// VerifyBookingPresence verifies that bookings are present in the list.
func VerifyBookingPresence(refs openapi.BookingRefs, expectedIDs ...int) {
	GinkgoHelper()

	ids := refs.IDs()

	for _, id := range expectedIDs {
		Expect(ids).To(ContainElement(id), "Expected booking ID %d to be present in the list", id)
	}
}

// VerifyBookingAbsence verifies that bookings are missing from the list.
func VerifyBookingAbsence(refs openapi.BookingRefs, unexpectedIDs ...int) {
	GinkgoHelper()

	ids := refs.IDs()

	for _, id := range unexpectedIDs {
		Expect(ids).NotTo(ContainElement(id), "Expected booking ID %d to be absent from the list", id)
	}
}
