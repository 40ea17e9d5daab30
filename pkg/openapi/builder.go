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

package openapi

import (
	"k8s.io/utils/ptr"
)

// BookingBuilder is a mutable draft of a booking.  Build returns a snapshot
// that shares no memory with the draft, so a single builder can be used to
// derive many variations of a base booking.
type BookingBuilder struct {
	booking Booking
}

// NewBooking returns an empty booking draft.
func NewBooking() *BookingBuilder {
	return &BookingBuilder{}
}

// ToBuilder returns a draft seeded from the booking.
func (b Booking) ToBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: b.Clone(),
	}
}

func (b *BookingBuilder) WithFirstname(firstname string) *BookingBuilder {
	b.booking.Firstname = ptr.To(firstname)
	return b
}

func (b *BookingBuilder) WithLastname(lastname string) *BookingBuilder {
	b.booking.Lastname = ptr.To(lastname)
	return b
}

func (b *BookingBuilder) WithTotalPrice(price int) *BookingBuilder {
	b.booking.TotalPrice = ptr.To(price)
	return b
}

func (b *BookingBuilder) WithDepositPaid(paid bool) *BookingBuilder {
	b.booking.DepositPaid = ptr.To(paid)
	return b
}

func (b *BookingBuilder) WithAdditionalNeeds(needs string) *BookingBuilder {
	b.booking.AdditionalNeeds = ptr.To(needs)
	return b
}

// WithBookingDates sets both ends of the stay.
func (b *BookingBuilder) WithBookingDates(checkin, checkout string) *BookingBuilder {
	b.booking.BookingDates = &BookingDates{
		Checkin:  ptr.To(checkin),
		Checkout: ptr.To(checkout),
	}

	return b
}

func (b *BookingBuilder) dates() *BookingDates {
	if b.booking.BookingDates == nil {
		b.booking.BookingDates = &BookingDates{}
	}

	return b.booking.BookingDates
}

// WithCheckin sets the check in date, creating the stay if required.
func (b *BookingBuilder) WithCheckin(checkin string) *BookingBuilder {
	b.dates().Checkin = ptr.To(checkin)
	return b
}

// WithCheckout sets the check out date, creating the stay if required.
func (b *BookingBuilder) WithCheckout(checkout string) *BookingBuilder {
	b.dates().Checkout = ptr.To(checkout)
	return b
}

// WithoutCheckin removes the check in date from the stay.
func (b *BookingBuilder) WithoutCheckin() *BookingBuilder {
	b.dates().Checkin = nil
	return b
}

// WithoutCheckout removes the check out date from the stay.
func (b *BookingBuilder) WithoutCheckout() *BookingBuilder {
	b.dates().Checkout = nil
	return b
}

// Build returns an immutable snapshot of the draft.
func (b *BookingBuilder) Build() Booking {
	return b.booking.Clone()
}
