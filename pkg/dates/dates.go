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

// Package dates provides the calendar date handling used by bookings.
package dates

import (
	"fmt"
	"time"
)

const (
	// Layout is the only date format the booking service understands.
	Layout = "2006-01-02"

	// Malformed is what the booking service stores when it cannot
	// parse a date.
	Malformed = "0NaN-aN-aN"
)

//nolint:gochecknoglobals
var (
	start = time.Now()

	// Today is the local date when the process started.
	Today = Format(start)

	// Yesterday is the day before Today.
	Yesterday = Format(start.AddDate(0, 0, -1))
)

// Format renders the calendar date of the time.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Offset returns the date relative to process start.
func Offset(years, months, days int) string {
	return Format(start.AddDate(years, months, days))
}

// Parse reads a calendar date in the booking layout.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return t, nil
}

// IsValid returns true if the string is a real calendar date in the
// booking layout.
func IsValid(s string) bool {
	_, err := time.Parse(Layout, s)

	return err == nil
}

// IsValidPtr is IsValid for optional fields, absent is not valid.
func IsValidPtr(s *string) bool {
	return s != nil && IsValid(*s)
}
