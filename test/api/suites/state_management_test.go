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
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	bookerclient "github.com/unikorn-cloud/booker/pkg/client"
	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/test/api"

	"k8s.io/utils/ptr"
)

var errScoped = errors.New("scoped work failed")

var _ = Describe("State Management", func() {
	Context("When a booking goes through its lifecycle", func() {
		It("should reflect every change and disappear once deleted", func() {
			john := openapi.NewBooking().
				WithFirstname("John").
				WithLastname(api.GenerateTestID("Smith")).
				WithTotalPrice(100).
				WithDepositPaid(true).
				WithBookingDates("2024-01-01", "2024-01-02").
				Build()

			created, err := client.Create(ctx, john, token)
			Expect(err).NotTo(HaveOccurred())

			api.DeleteBookingOnCleanup(client, created.BookingID, token)

			Expect(created.BookingID).To(BeNumerically(">", 0))
			Expect(created.Booking).To(Equal(john))

			fetched, err := client.Get(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*fetched).To(Equal(john))

			api.ExpectOK(client.PartialUpdate(ctx, openapi.Booking{TotalPrice: ptr.To(200)}, created.BookingID, token, openapi.MediaTypeJSON))

			fetched, err = client.Get(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*fetched).To(Equal(john.ToBuilder().WithTotalPrice(200).Build()))

			api.ExpectSuccess(client.Delete(ctx, created.BookingID, token))

			fetched, err = client.Get(ctx, created.BookingID)
			api.ExpectNotFound(err)
			Expect(fetched).To(BeNil())
		})

		It("should not allow a booking to be deleted twice", func() {
			created, err := client.Create(ctx, api.NewBookingPayload().Build(), token)
			Expect(err).NotTo(HaveOccurred())

			api.DeleteBookingOnCleanup(client, created.BookingID, token)

			api.ExpectSuccess(client.Delete(ctx, created.BookingID, token))
			api.ExpectMethodNotAllowed(client.Delete(ctx, created.BookingID, token))
		})

		It("should not allow a deleted booking to be updated", func() {
			created, err := client.Create(ctx, api.NewBookingPayload().Build(), token)
			Expect(err).NotTo(HaveOccurred())

			api.DeleteBookingOnCleanup(client, created.BookingID, token)

			api.ExpectSuccess(client.Delete(ctx, created.BookingID, token))
			api.ExpectMethodNotAllowed(client.PartialUpdate(ctx, openapi.Booking{TotalPrice: ptr.To(1)}, created.BookingID, token, openapi.MediaTypeJSON))
		})
	})

	Context("When a booking is registered for clean up", Ordered, func() {
		var id int

		It("should register the booking", func() {
			created, err := client.Create(ctx, api.NewBookingPayload().Build(), token)
			Expect(err).NotTo(HaveOccurred())

			api.DeleteBookingOnCleanup(client, created.BookingID, token)

			id = created.BookingID
		})

		It("should have deleted the booking during clean up", func() {
			Expect(id).NotTo(BeZero())

			_, err := client.Get(ctx, id)
			api.ExpectNotFound(err)
		})
	})

	Context("When round tripping a booking", func() {
		DescribeTable("should fetch what was sent",
			func(booking openapi.Booking) {
				created := api.CreateBookingWithCleanup(ctx, client, booking, token)

				fetched, err := client.Get(ctx, created.BookingID)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.Covers(booking)).To(BeTrue(), "sent %+v, got %+v", booking, *fetched)
			},
			Entry("with every field", api.NewBookingPayload().Build()),
			Entry("with only required fields", api.NewMinimalBookingPayload().Build()),
		)

		It("should not invent additional needs", func() {
			created := api.CreateBookingWithCleanup(ctx, client, api.NewMinimalBookingPayload().Build(), token)

			Expect(created.Booking.AdditionalNeeds).To(BeNil())

			fetched, err := client.Get(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.AdditionalNeeds).To(BeNil())
		})
	})

	Context("When scoping a booking to a piece of work", func() {
		It("should delete the booking once the work is done", func() {
			var id int

			err := bookerclient.WithBooking(ctx, client, api.NewBookingPayload().Build(), token, func(created *openapi.CreatedBooking) error {
				id = created.BookingID

				_, err := client.Get(ctx, id)

				return err
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = client.Get(ctx, id)
			api.ExpectNotFound(err)
		})

		It("should delete the booking when the work fails", func() {
			var id int

			err := bookerclient.WithBooking(ctx, client, api.NewBookingPayload().Build(), token, func(created *openapi.CreatedBooking) error {
				id = created.BookingID

				return errScoped
			})
			Expect(err).To(MatchError(errScoped))

			_, err = client.Get(ctx, id)
			Expect(bookerclient.IsStatus(err, http.StatusNotFound)).To(BeTrue())
		})
	})
})
