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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/test/api"
)

var _ = Describe("Core Booking Management", func() {
	Context("When creating a new booking", func() {
		Describe("Given valid booking details", func() {
			It("should echo the booking with a new ID", func() {
				booking := api.NewBookingPayload().Build()

				created := api.CreateBookingWithCleanup(ctx, client, booking, token)

				Expect(created.BookingID).To(BeNumerically(">", 0))
				Expect(created.Booking).To(Equal(booking))
			})

			It("should hand out a different ID for each booking", func() {
				first := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)
				second := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)

				Expect(second.BookingID).NotTo(Equal(first.BookingID))
			})
		})
	})

	Context("When retrieving a specific booking", func() {
		Describe("Given the booking exists", func() {
			It("should return the booking details", func() {
				created := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)

				booking, err := client.Get(ctx, created.BookingID)
				Expect(err).NotTo(HaveOccurred())
				Expect(*booking).To(Equal(created.Booking))
			})
		})
	})

	Context("When partially updating a booking", func() {
		Describe("Given a valid token", func() {
			It("should echo the updated booking in the requested format", func() {
				created := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)

				patch := openapi.NewBooking().WithFirstname(api.GenerateTestID("renamed")).Build()

				resp := api.ExpectOK(client.PartialUpdate(ctx, patch, created.BookingID, token, openapi.MediaTypeJSON))
				Expect(resp).To(api.HaveContentType(openapi.MediaTypeJSON))

				updated, err := resp.Booking()
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Firstname).To(Equal(patch.Firstname))
				Expect(updated.Covers(created.Booking.Merge(patch))).To(BeTrue())
			})
		})
	})

	Context("When deleting a booking", func() {
		Describe("Given a valid token", func() {
			It("should acknowledge with 201 Created", func() {
				created, err := client.Create(ctx, api.NewBookingPayload().Build(), token)
				Expect(err).NotTo(HaveOccurred())

				api.DeleteBookingOnCleanup(client, created.BookingID, token)

				api.ExpectSuccess(client.Delete(ctx, created.BookingID, token))

				_, err = client.Get(ctx, created.BookingID)
				api.ExpectNotFound(err)
			})
		})
	})
})
