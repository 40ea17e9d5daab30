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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	bookerclient "github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/dates"
	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/test/api"

	"k8s.io/utils/ptr"
)

// missingID is never handed out by the service.
const missingID = -1

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When addressing a booking that does not exist", func() {
		It("should return method not allowed on delete", func() {
			api.ExpectMethodNotAllowed(client.Delete(ctx, missingID, token))
		})

		It("should return method not allowed on partial update", func() {
			api.ExpectMethodNotAllowed(client.PartialUpdate(ctx, openapi.Booking{TotalPrice: ptr.To(1)}, missingID, token, openapi.MediaTypeJSON))
		})

		It("should return not found on read", func() {
			booking, err := client.Get(ctx, missingID)
			api.ExpectNotFound(err)
			Expect(booking).To(BeNil())

			resp, err := client.GetAs(ctx, missingID, openapi.MediaTypeJSON)
			api.ExpectBody(resp, err, http.StatusNotFound, "Not Found")
		})
	})

	Context("When creating an incomplete booking", func() {
		DescribeTable("should fail with an internal server error",
			func(remove func(*openapi.Booking)) {
				booking := api.NewBookingPayload().Build()
				remove(&booking)

				created, err := client.Create(ctx, booking, token)
				if err == nil {
					api.DeleteBookingOnCleanup(client, created.BookingID, token)
				}

				Expect(err).To(MatchError(bookerclient.ErrUnexpectedStatus))
				Expect(bookerclient.IsStatus(err, http.StatusInternalServerError)).To(BeTrue(), "got %v", err)
			},
			Entry("without a first name", func(b *openapi.Booking) { b.Firstname = nil }),
			Entry("without a last name", func(b *openapi.Booking) { b.Lastname = nil }),
			Entry("without a total price", func(b *openapi.Booking) { b.TotalPrice = nil }),
			Entry("without a deposit", func(b *openapi.Booking) { b.DepositPaid = nil }),
			Entry("without booking dates", func(b *openapi.Booking) { b.BookingDates = nil }),
			Entry("without anything", func(b *openapi.Booking) { *b = openapi.Booking{} }),
		)

		It("should not require additional needs", func() {
			api.CreateBookingWithCleanup(ctx, client, api.NewMinimalBookingPayload().Build(), token)
		})
	})

	Context("When creating a booking with bad dates", func() {
		DescribeTable("should store the malformed marker rather than reject it",
			func(booking openapi.Booking) {
				created := api.CreateBookingWithCleanup(ctx, client, booking, token)

				Expect(created.Booking.BookingDates.Checkin).To(HaveValue(Equal(dates.Malformed)))
				Expect(dates.IsValidPtr(created.Booking.BookingDates.Checkin)).To(BeFalse())

				fetched, err := client.Get(ctx, created.BookingID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.BookingDates.Equal(created.Booking.BookingDates)).To(BeTrue())
			},
			Entry("with no check in", api.NewBookingPayload().WithoutCheckin().Build()),
			Entry("with an empty check in", api.NewBookingPayload().WithCheckin("").Build()),
			Entry("with a nonsense check in", api.NewBookingPayload().WithCheckin("tomorrow").Build()),
		)
	})

	Context("When listing with filters the service cannot parse", func() {
		It("should match nothing for an unparseable date", func() {
			api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)

			Expect(listIDs(bookerclient.Filters{"checkin": "garbage"})).To(BeEmpty())
		})
	})

	Context("When checking the service is up", func() {
		It("should answer 201 Created", func() {
			Expect(client.Ping(ctx)).To(Succeed())
		})
	})
})
