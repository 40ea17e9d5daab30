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

package client

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Filters are booking listing query parameters.  Keys are sent verbatim, the
// service ignores the ones it doesn't know, and that is something we test.
type Filters map[string]string

// Values returns the filters as query parameters.
func (f Filters) Values() url.Values {
	values := url.Values{}

	for k, v := range f {
		values.Set(k, v)
	}

	return values
}

// Merge returns a new set of filters, values in the other set win.
func (f Filters) Merge(other Filters) Filters {
	out := make(Filters, len(f)+len(other))

	for k, v := range f {
		out[k] = v
	}

	for k, v := range other {
		out[k] = v
	}

	return out
}

// BookingFilter is the set of filters the service documents.
type BookingFilter struct {
	Firstname string `url:"firstname,omitempty"`
	Lastname  string `url:"lastname,omitempty"`
	Checkin   string `url:"checkin,omitempty"`
	Checkout  string `url:"checkout,omitempty"`
}

// Filters encodes the populated fields.
func (f BookingFilter) Filters() (Filters, error) {
	values, err := query.Values(f)
	if err != nil {
		return nil, fmt.Errorf("encoding booking filter: %w", err)
	}

	out := Filters{}

	for k := range values {
		out[k] = values.Get(k)
	}

	return out, nil
}
