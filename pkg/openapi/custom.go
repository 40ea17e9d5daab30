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
	"encoding/json"
	"encoding/xml"
	"errors"
	"mime"
	"strings"
)

var ErrInvalidMediaType = errors.New("invalid media type: must be one of json, xml, application/json or application/xml")

// MediaType is a content type the booking service can negotiate.
type MediaType string

const (
	MediaTypeJSON MediaType = "application/json"
	MediaTypeXML  MediaType = "application/xml"
)

// ParseMediaType maps a short name or MIME type, optionally with parameters,
// to a media type.
func ParseMediaType(s string) (MediaType, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "json":
		return MediaTypeJSON, nil
	case "xml":
		return MediaTypeXML, nil
	}

	t, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", ErrInvalidMediaType
	}

	switch t {
	case string(MediaTypeJSON):
		return MediaTypeJSON, nil
	case string(MediaTypeXML), "text/xml":
		return MediaTypeXML, nil
	}

	return "", ErrInvalidMediaType
}

func (m *MediaType) UnmarshalText(text []byte) error {
	t, err := ParseMediaType(string(text))
	if err != nil {
		return err
	}

	*m = t

	return nil
}

func (m MediaType) String() string {
	return string(m)
}

// Marshal encodes a value in the media type.
func (m MediaType) Marshal(v any) ([]byte, error) {
	switch m {
	case MediaTypeJSON:
		return json.Marshal(v)
	case MediaTypeXML:
		return xml.Marshal(v)
	}

	return nil, ErrInvalidMediaType
}

// Unmarshal decodes a value from the media type.
func (m MediaType) Unmarshal(data []byte, v any) error {
	switch m {
	case MediaTypeJSON:
		return json.Unmarshal(data, v)
	case MediaTypeXML:
		return xml.Unmarshal(data, v)
	}

	return ErrInvalidMediaType
}

// MarshalXML encodes the booking as a <booking> document.
func (b Booking) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type booking Booking

	start.Name = xml.Name{Local: "booking"}

	return e.EncodeElement(booking(b), start)
}

// BookingRefs is a booking listing.
type BookingRefs []BookingRef

// IDs returns the booking IDs in listing order.
func (r BookingRefs) IDs() []int {
	ids := make([]int, len(r))

	for i := range r {
		ids[i] = r[i].BookingID
	}

	return ids
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

// Clone returns a deep copy of the dates.
func (d *BookingDates) Clone() *BookingDates {
	if d == nil {
		return nil
	}

	return &BookingDates{
		Checkin:  clonePtr(d.Checkin),
		Checkout: clonePtr(d.Checkout),
	}
}

// Equal compares dates by value, nil and empty are distinct.
func (d *BookingDates) Equal(o *BookingDates) bool {
	if d == nil || o == nil {
		return d == o
	}

	return ptrEqual(d.Checkin, o.Checkin) && ptrEqual(d.Checkout, o.Checkout)
}

// Clone returns a deep copy of the booking.
func (b Booking) Clone() Booking {
	return Booking{
		Firstname:       clonePtr(b.Firstname),
		Lastname:        clonePtr(b.Lastname),
		TotalPrice:      clonePtr(b.TotalPrice),
		DepositPaid:     clonePtr(b.DepositPaid),
		BookingDates:    b.BookingDates.Clone(),
		AdditionalNeeds: clonePtr(b.AdditionalNeeds),
	}
}

// Merge overlays all populated fields of the patch on a copy of the booking.
// Booking dates are replaced as a whole, which is what the service does.
func (b Booking) Merge(patch Booking) Booking {
	out := b.Clone()

	if patch.Firstname != nil {
		out.Firstname = clonePtr(patch.Firstname)
	}

	if patch.Lastname != nil {
		out.Lastname = clonePtr(patch.Lastname)
	}

	if patch.TotalPrice != nil {
		out.TotalPrice = clonePtr(patch.TotalPrice)
	}

	if patch.DepositPaid != nil {
		out.DepositPaid = clonePtr(patch.DepositPaid)
	}

	if patch.BookingDates != nil {
		out.BookingDates = patch.BookingDates.Clone()
	}

	if patch.AdditionalNeeds != nil {
		out.AdditionalNeeds = clonePtr(patch.AdditionalNeeds)
	}

	return out
}

// Covers returns true if every field populated in the other booking has the
// same value in this one.  This is how a round trip is checked, the service is
// free to fill in things we didn't send.
func (b Booking) Covers(o Booking) bool {
	if o.Firstname != nil && !ptrEqual(b.Firstname, o.Firstname) {
		return false
	}

	if o.Lastname != nil && !ptrEqual(b.Lastname, o.Lastname) {
		return false
	}

	if o.TotalPrice != nil && !ptrEqual(b.TotalPrice, o.TotalPrice) {
		return false
	}

	if o.DepositPaid != nil && !ptrEqual(b.DepositPaid, o.DepositPaid) {
		return false
	}

	if o.BookingDates != nil && !b.BookingDates.Equal(o.BookingDates) {
		return false
	}

	if o.AdditionalNeeds != nil && !ptrEqual(b.AdditionalNeeds, o.AdditionalNeeds) {
		return false
	}

	return true
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
