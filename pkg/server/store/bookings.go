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

// Package store keeps bookings in memory for the fake booking service.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/unikorn-cloud/booker/pkg/dates"
	"github.com/unikorn-cloud/booker/pkg/openapi"

	"k8s.io/utils/ptr"
)

var (
	ErrNotFound = errors.New("booking not found")

	ErrIncomplete = errors.New("booking is missing required fields")
)

//nolint:gochecknoglobals
var layouts = []string{
	dates.Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeDate returns the date in the booking layout.  Dates that cannot
// be parsed, or are absent, become the malformed date marker.
func NormalizeDate(s *string) string {
	if s == nil {
		return dates.Malformed
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return dates.Format(t)
		}
	}

	return dates.Malformed
}

func normalize(b openapi.Booking) openapi.Booking {
	out := b.Clone()

	if out.BookingDates != nil {
		out.BookingDates = &openapi.BookingDates{
			Checkin:  ptr.To(NormalizeDate(out.BookingDates.Checkin)),
			Checkout: ptr.To(NormalizeDate(out.BookingDates.Checkout)),
		}
	}

	return out
}

// Query selects bookings, nil fields match everything.
type Query struct {
	Firstname *string
	Lastname  *string
	// Checkin matches bookings that check in strictly after the date.
	Checkin *string
	// Checkout matches bookings that check out on or after the date.
	Checkout *string
}

func after(value *string, bound string, inclusive bool) bool {
	if value == nil {
		return false
	}

	v, err := dates.Parse(*value)
	if err != nil {
		return false
	}

	b, err := dates.Parse(NormalizeDate(&bound))
	if err != nil {
		return false
	}

	if inclusive && v.Equal(b) {
		return true
	}

	return v.After(b)
}

func (q *Query) matches(b *openapi.Booking) bool {
	if q.Firstname != nil && (b.Firstname == nil || *b.Firstname != *q.Firstname) {
		return false
	}

	if q.Lastname != nil && (b.Lastname == nil || *b.Lastname != *q.Lastname) {
		return false
	}

	var checkin, checkout *string

	if b.BookingDates != nil {
		checkin = b.BookingDates.Checkin
		checkout = b.BookingDates.Checkout
	}

	if q.Checkin != nil && !after(checkin, *q.Checkin, false) {
		return false
	}

	if q.Checkout != nil && !after(checkout, *q.Checkout, true) {
		return false
	}

	return true
}

// Bookings is a concurrency safe booking store.  IDs are allocated
// sequentially from 1 and never reused.
type Bookings struct {
	lock     sync.RWMutex
	lastID   int
	bookings map[int]openapi.Booking
}

func New() *Bookings {
	return &Bookings{
		bookings: map[int]openapi.Booking{},
	}
}

// Validate checks a booking has everything creation requires.
func Validate(b *openapi.Booking) error {
	if b.Firstname == nil || b.Lastname == nil || b.TotalPrice == nil || b.DepositPaid == nil || b.BookingDates == nil {
		return ErrIncomplete
	}

	return nil
}

// Create stores a new booking, dates are normalized.
func (s *Bookings) Create(b openapi.Booking) (*openapi.CreatedBooking, error) {
	if err := Validate(&b); err != nil {
		return nil, err
	}

	b = normalize(b)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastID++

	s.bookings[s.lastID] = b

	return &openapi.CreatedBooking{
		BookingID: s.lastID,
		Booking:   b.Clone(),
	}, nil
}

func (s *Bookings) Get(id int) (*openapi.Booking, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := b.Clone()

	return &out, nil
}

// Patch overlays the populated fields of the patch, dates are replaced
// as a whole and normalized.
func (s *Bookings) Patch(id int, patch openapi.Booking) (*openapi.Booking, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}

	b = normalize(b.Merge(patch))

	s.bookings[id] = b

	out := b.Clone()

	return &out, nil
}

func (s *Bookings) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}

	delete(s.bookings, id)

	return nil
}

// List returns the IDs of matching bookings in ascending order.
func (s *Bookings) List(q Query) []int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := make([]int, 0, len(s.bookings))

	for id := range s.bookings {
		b := s.bookings[id]

		if q.matches(&b) {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids
}
