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
	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/test/api"
)

// invalidTokens are the ways a caller can get authentication wrong.
//
//nolint:gochecknoglobals
var invalidTokens = []TableEntry{
	Entry("an empty token", func() string { return "" }),
	Entry("a truncated token", func() string { return token[:len(token)-1] }),
	Entry("an unknown token", func() string { return "0123456789abcde" }),
	Entry("a token with trailing garbage", func() string { return token + "x" }),
}

var _ = Describe("Security and Authentication", func() {
	Context("When authenticating", func() {
		Describe("Given valid admin credentials", func() {
			It("should issue a non-empty token", func() {
				credential, err := client.Authenticate(ctx, openapi.Credential{
					Username: config.AdminUsername,
					Password: config.AdminPassword,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(credential.Token).NotTo(BeNil())
				Expect(*credential.Token).NotTo(BeEmpty())
				Expect(credential.Username).To(Equal(config.AdminUsername))
			})

			It("should issue a fresh token each time", func() {
				Expect(api.AdminToken(ctx, client)).NotTo(Equal(token))
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should return a reason instead of a token",
				func(credential openapi.Credential) {
					_, err := client.Authenticate(ctx, credential)

					Expect(err).To(MatchError(bookerclient.ErrMissingToken))
					Expect(err.Error()).To(ContainSubstring("Bad credentials"))
				},
				Entry("with a wrong password", openapi.Credential{Username: "admin", Password: "wrong"}),
				Entry("with an unknown user", openapi.Credential{Username: api.GenerateTestID("user"), Password: "password123"}),
				Entry("with empty credentials", openapi.Credential{}),
			)
		})
	})

	Context("When deleting a booking", func() {
		var created *openapi.CreatedBooking

		BeforeEach(func() {
			created = api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)
		})

		DescribeTable("should be forbidden with",
			func(invalid func() string) {
				api.ExpectForbidden(client.Delete(ctx, created.BookingID, invalid()))

				booking, err := client.Get(ctx, created.BookingID)
				Expect(err).NotTo(HaveOccurred())
				Expect(*booking).To(Equal(created.Booking))
			},
			invalidTokens,
		)

		It("should be forbidden for a missing booking without a token", func() {
			api.ExpectForbidden(client.Delete(ctx, -1, ""))
		})
	})

	Context("When partially updating a booking", func() {
		var created *openapi.CreatedBooking

		BeforeEach(func() {
			created = api.CreateBookingWithCleanup(ctx, client, api.NewBookingPayload().Build(), token)
		})

		DescribeTable("should be forbidden with",
			func(invalid func() string) {
				patch := openapi.NewBooking().WithFirstname(api.GenerateTestID("intruder")).Build()

				api.ExpectForbidden(client.PartialUpdate(ctx, patch, created.BookingID, invalid(), openapi.MediaTypeJSON))

				booking, err := client.Get(ctx, created.BookingID)
				Expect(err).NotTo(HaveOccurred())
				Expect(*booking).To(Equal(created.Booking))
			},
			invalidTokens,
		)

		It("should succeed with a valid token", func() {
			patch := openapi.NewBooking().WithAdditionalNeeds("Breakfast").Build()

			api.ExpectOK(client.PartialUpdate(ctx, patch, created.BookingID, token, openapi.MediaTypeJSON))
		})
	})

	Context("When creating a booking", func() {
		Describe("Given no token", func() {
			It("should still create the booking", func() {
				created, err := client.Create(ctx, api.NewBookingPayload().Build(), "")
				Expect(err).NotTo(HaveOccurred())

				api.DeleteBookingOnCleanup(client, created.BookingID, token)
			})
		})
	})
})
