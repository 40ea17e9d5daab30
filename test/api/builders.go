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

package api

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/unikorn-cloud/booker/pkg/dates"
	"github.com/unikorn-cloud/booker/pkg/openapi"
)

const (
	minTotalPrice = 100
	maxTotalPrice = 1000
	maxStayDays   = 14
)

//nolint:gochecknoglobals
var additionalNeeds = []string{"Breakfast", "Lunch", "Dinner", "Late checkout", "Airport transfer"}

// NewBookingPayload creates a booking builder populated with random but
// valid data.  Check in is in the future and check out follows it.
func NewBookingPayload() *openapi.BookingBuilder {
	offset := gofakeit.Number(1, 30)
	stay := gofakeit.Number(1, maxStayDays)

	return openapi.NewBooking().
		WithFirstname(gofakeit.FirstName()).
		WithLastname(gofakeit.LastName()).
		WithTotalPrice(gofakeit.Number(minTotalPrice, maxTotalPrice)).
		WithDepositPaid(gofakeit.Bool()).
		WithAdditionalNeeds(gofakeit.RandomString(additionalNeeds)).
		WithBookingDates(dates.Offset(0, 0, offset), dates.Offset(0, 0, offset+stay))
}

// NewMinimalBookingPayload creates a booking with only the fields the service
// requires.
func NewMinimalBookingPayload() *openapi.BookingBuilder {
	return openapi.NewBooking().
		WithFirstname(gofakeit.FirstName()).
		WithLastname(gofakeit.LastName()).
		WithTotalPrice(gofakeit.Number(minTotalPrice, maxTotalPrice)).
		WithDepositPaid(false).
		WithBookingDates(dates.Today, dates.Offset(0, 0, 1))
}

// GenerateTestID returns a unique name for tagging test data.
func GenerateTestID(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102-150405"), gofakeit.LetterN(6))
}
