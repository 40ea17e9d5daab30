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

	bookerclient "github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/dates"
	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/test/api"

	"k8s.io/apimachinery/pkg/util/sets"
)

// listIDs lists bookings and decodes the references.
func listIDs(filters bookerclient.Filters) openapi.BookingRefs {
	GinkgoHelper()

	resp := api.ExpectOK(client.ListIDs(ctx, filters))
	Expect(resp).To(api.HaveContentType(openapi.MediaTypeJSON))

	refs, err := resp.BookingRefs()
	Expect(err).NotTo(HaveOccurred())

	return refs
}

var _ = Describe("Discovery and Metadata", func() {
	Context("When listing bookings", func() {
		Describe("Given no filters", func() {
			It("should include every booking we created with unique IDs", func() {
				created := api.CreateBookingsWithCleanup(ctx, client, token, 3)

				refs := listIDs(nil)

				for _, booking := range created {
					api.VerifyBookingPresence(refs, booking.BookingID)
				}

				Expect(sets.New(refs.IDs()...).Len()).To(Equal(len(refs)))
			})

			It("should not include deleted bookings", func() {
				created, err := client.Create(ctx, api.NewBookingPayload().Build(), token)
				Expect(err).NotTo(HaveOccurred())

				api.DeleteBookingOnCleanup(client, created.BookingID, token)

				api.ExpectSuccess(client.Delete(ctx, created.BookingID, token))

				api.VerifyBookingAbsence(listIDs(nil), created.BookingID)
			})
		})

		Describe("Given name filters", func() {
			It("should return only the booking with both names", func() {
				firstname := api.GenerateTestID("first")
				lastname := api.GenerateTestID("last")

				ours := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithFirstname(firstname).WithLastname(lastname).Build(), token)
				sameFirst := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithFirstname(firstname).Build(), token)
				sameLast := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithLastname(lastname).Build(), token)

				filters, err := bookerclient.BookingFilter{Firstname: firstname, Lastname: lastname}.Filters()
				Expect(err).NotTo(HaveOccurred())

				Expect(listIDs(filters).IDs()).To(ConsistOf(ours.BookingID))

				filters, err = bookerclient.BookingFilter{Firstname: firstname}.Filters()
				Expect(err).NotTo(HaveOccurred())

				Expect(listIDs(filters).IDs()).To(ConsistOf(ours.BookingID, sameFirst.BookingID))

				filters, err = bookerclient.BookingFilter{Lastname: lastname}.Filters()
				Expect(err).NotTo(HaveOccurred())

				Expect(listIDs(filters).IDs()).To(ConsistOf(ours.BookingID, sameLast.BookingID))
			})

			It("should return nothing for names nobody has", func() {
				Expect(listIDs(bookerclient.Filters{"firstname": api.GenerateTestID("nobody")})).To(BeEmpty())
			})
		})

		Describe("Given date filters", func() {
			It("should only return bookings checking in strictly after the date", func() {
				later := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithBookingDates(dates.Today, dates.Offset(0, 0, 2)).Build(), token)
				same := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithBookingDates(dates.Yesterday, dates.Offset(0, 0, 2)).Build(), token)

				filters, err := bookerclient.BookingFilter{Checkin: dates.Yesterday}.Filters()
				Expect(err).NotTo(HaveOccurred())

				refs := listIDs(filters)

				api.VerifyBookingPresence(refs, later.BookingID)
				api.VerifyBookingAbsence(refs, same.BookingID)
				Expect(sets.New(refs.IDs()...).Len()).To(Equal(len(refs)))
			})

			It("should return bookings checking out on or after the date", func() {
				checkout := dates.Offset(0, 0, 5)

				onTheDay := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithBookingDates(dates.Today, checkout).Build(), token)
				before := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithBookingDates(dates.Today, dates.Offset(0, 0, 4)).Build(), token)

				filters, err := bookerclient.BookingFilter{Checkout: checkout}.Filters()
				Expect(err).NotTo(HaveOccurred())

				refs := listIDs(filters)

				api.VerifyBookingPresence(refs, onTheDay.BookingID)
				api.VerifyBookingAbsence(refs, before.BookingID)
			})

			It("should combine name and date filters", func() {
				lastname := api.GenerateTestID("last")

				inRange := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithLastname(lastname).WithBookingDates(dates.Offset(0, 0, 1), dates.Offset(0, 0, 3)).Build(), token)
				api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithLastname(lastname).WithBookingDates(dates.Offset(0, 0, -10), dates.Offset(0, 0, -8)).Build(), token)

				filters, err := bookerclient.BookingFilter{Lastname: lastname, Checkin: dates.Today}.Filters()
				Expect(err).NotTo(HaveOccurred())

				Expect(listIDs(filters).IDs()).To(ConsistOf(inRange.BookingID))
			})
		})

		Describe("Given unrecognised filters", func() {
			It("should ignore them", func() {
				created := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)

				unfiltered := listIDs(nil)
				filtered := listIDs(bookerclient.Filters{"colour": "blue"})

				Expect(len(filtered)).To(BeNumerically(">=", len(unfiltered)))
				api.VerifyBookingPresence(filtered, created.BookingID)
			})

			It("should ignore them alongside known filters", func() {
				firstname := api.GenerateTestID("first")

				created := api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().WithFirstname(firstname).Build(), token)

				filters, err := bookerclient.BookingFilter{Firstname: firstname}.Filters()
				Expect(err).NotTo(HaveOccurred())

				Expect(listIDs(filters.Merge(bookerclient.Filters{"colour": "blue"})).IDs()).To(ConsistOf(created.BookingID))
			})
		})
	})

	Context("When reading a booking in different formats", func() {
		var created *openapi.CreatedBooking

		BeforeEach(func() {
			created = api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)
		})

		It("should return JSON by default", func() {
			resp := api.ExpectOK(client.GetAs(ctx, created.BookingID, openapi.MediaTypeJSON))
			Expect(resp).To(api.HaveContentType(openapi.MediaTypeJSON))

			booking, err := resp.Booking()
			Expect(err).NotTo(HaveOccurred())
			Expect(*booking).To(Equal(created.Booking))
		})

		It("should return XML when asked", func() {
			resp := api.ExpectOK(client.GetAs(ctx, created.BookingID, openapi.MediaTypeXML))

			// The public service labels XML responses as text/html.
			if client.IsFake() {
				Expect(resp).To(api.HaveContentType(openapi.MediaTypeXML))
			}

			booking, err := resp.BookingAs(openapi.MediaTypeXML)
			Expect(err).NotTo(HaveOccurred())
			Expect(*booking).To(Equal(created.Booking))
		})
	})
})
