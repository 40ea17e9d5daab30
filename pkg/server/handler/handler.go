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

//nolint:revive
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/booker/pkg/openapi"
	"github.com/unikorn-cloud/booker/pkg/server/store"

	"k8s.io/utils/ptr"
)

// Handler reproduces the booking service, warts and all.  Status codes and
// bodies match the real thing rather than what would be sensible.
type Handler struct {
	// options allows behaviour to be defined on the CLI.
	options *Options

	// bookings is where bookings live.
	bookings *store.Bookings

	// tokens are the issued authentication tokens.
	tokens *Tokens
}

// Ensure the handler implements the router interface.
var _ openapi.ServerInterface = &Handler{}

func New(options *Options) (*Handler, error) {
	h := &Handler{
		options:  options,
		bookings: store.New(),
		tokens:   NewTokens(),
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// writeText writes the canonical status text as a plain text body.
func writeText(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	_, _ = io.WriteString(w, http.StatusText(status))
}

// writeBody writes the value in the media type.
func writeBody(w http.ResponseWriter, r *http.Request, mediaType openapi.MediaType, status int, v any) {
	data, err := mediaType.Marshal(v)
	if err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to marshal response")
		writeText(w, http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", string(mediaType)+"; charset=utf-8")
	w.WriteHeader(status)

	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeBody(w, r, openapi.MediaTypeJSON, status, v)
}

// accepted picks the response media type, anything not recognisably XML
// gets JSON.
func accepted(r *http.Request) openapi.MediaType {
	if mediaType, err := openapi.ParseMediaType(r.Header.Get("Accept")); err == nil {
		return mediaType
	}

	return openapi.MediaTypeJSON
}

// readBody decodes the request body according to its content type, an
// absent content type is treated as JSON.
func readBody(r *http.Request, v any) error {
	mediaType := openapi.MediaTypeJSON

	if header := r.Header.Get("Content-Type"); header != "" {
		t, err := openapi.ParseMediaType(header)
		if err != nil {
			return err
		}

		mediaType = t
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return mediaType.Unmarshal(data, v)
}

// ParameterError handles request parameters that cannot be bound.  Booking IDs
// that aren't integers are treated like unknown bookings.
func (h *Handler) ParameterError(w http.ResponseWriter, r *http.Request, err error) {
	logr.FromContextOrDiscard(r.Context()).V(1).Info("parameter error", "error", err.Error())

	h.setUncacheable(w)

	switch r.Method {
	case http.MethodGet:
		writeText(w, http.StatusNotFound)
	case http.MethodPatch, http.MethodDelete:
		if !h.authorized(r) {
			writeText(w, http.StatusForbidden)
			return
		}

		writeText(w, http.StatusMethodNotAllowed)
	default:
		writeText(w, http.StatusBadRequest)
	}
}

func (h *Handler) GetPing(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusCreated)
}

func (h *Handler) PostAuth(w http.ResponseWriter, r *http.Request) {
	var credential openapi.Credential

	h.setUncacheable(w)

	// Garbage in is reported the same as bad credentials.
	if err := json.NewDecoder(r.Body).Decode(&credential); err != nil || !h.options.Admin(credential.Username, credential.Password) {
		writeJSON(w, r, http.StatusOK, &openapi.AuthResponse{Reason: ptr.To("Bad credentials")})
		return
	}

	token, err := h.tokens.Issue()
	if err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to issue token")
		writeText(w, http.StatusInternalServerError)

		return
	}

	writeJSON(w, r, http.StatusOK, &openapi.AuthResponse{Token: &token})
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request, params openapi.GetBookingParams) {
	query := store.Query{
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Checkin:   params.Checkin,
		Checkout:  params.Checkout,
	}

	ids := h.bookings.List(query)

	result := make(openapi.BookingRefs, len(ids))

	for i, id := range ids {
		result[i] = openapi.BookingRef{BookingID: id}
	}

	h.setUncacheable(w)
	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) PostBooking(w http.ResponseWriter, r *http.Request) {
	var request openapi.Booking

	h.setUncacheable(w)

	if err := readBody(r, &request); err != nil {
		writeText(w, http.StatusBadRequest)
		return
	}

	result, err := h.bookings.Create(request)
	if err != nil {
		// The service doesn't validate, it falls over.
		writeText(w, http.StatusInternalServerError)
		return
	}

	logr.FromContextOrDiscard(r.Context()).Info("booking created", "id", result.BookingID)

	writeBody(w, r, accepted(r), http.StatusOK, result)
}

func (h *Handler) GetBookingID(w http.ResponseWriter, r *http.Request, id openapi.BookingIDParameter) {
	result, err := h.bookings.Get(id)
	if err != nil {
		h.setUncacheable(w)
		writeText(w, http.StatusNotFound)

		return
	}

	h.setUncacheable(w)
	writeBody(w, r, accepted(r), http.StatusOK, result)
}

func (h *Handler) PatchBookingID(w http.ResponseWriter, r *http.Request, id openapi.BookingIDParameter) {
	h.setUncacheable(w)

	if !h.authorized(r) {
		writeText(w, http.StatusForbidden)
		return
	}

	var request openapi.Booking

	if err := readBody(r, &request); err != nil {
		writeText(w, http.StatusBadRequest)
		return
	}

	result, err := h.bookings.Patch(id, request)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeText(w, http.StatusMethodNotAllowed)
			return
		}

		writeText(w, http.StatusInternalServerError)

		return
	}

	writeBody(w, r, accepted(r), http.StatusOK, result)
}

func (h *Handler) DeleteBookingID(w http.ResponseWriter, r *http.Request, id openapi.BookingIDParameter) {
	h.setUncacheable(w)

	if !h.authorized(r) {
		writeText(w, http.StatusForbidden)
		return
	}

	if err := h.bookings.Delete(id); err != nil {
		writeText(w, http.StatusMethodNotAllowed)
		return
	}

	logr.FromContextOrDiscard(r.Context()).Info("booking deleted", "id", id)

	writeText(w, http.StatusCreated)
}
