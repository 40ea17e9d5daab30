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

package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"
)

// tokenLength matches the tokens the real service hands out.
const tokenLength = 15

// Tokens records the tokens that have been issued.  Tokens never expire.
type Tokens struct {
	lock   sync.RWMutex
	issued sets.Set[string]
}

func NewTokens() *Tokens {
	return &Tokens{
		issued: sets.New[string](),
	}
}

// Issue creates and records a new token.
func (t *Tokens) Issue() (string, error) {
	buf := make([]byte, (tokenLength+1)/2)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	token := hex.EncodeToString(buf)[:tokenLength]

	t.lock.Lock()
	defer t.lock.Unlock()

	t.issued.Insert(token)

	return token, nil
}

// Valid returns true if the token was issued by us.
func (t *Tokens) Valid(token string) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return token != "" && t.issued.Has(token)
}

// authorized accepts a token cookie, a token in the authorization header
// either bare or as a bearer token, or basic authentication as the admin.
func (h *Handler) authorized(r *http.Request) bool {
	if cookie, err := r.Cookie("token"); err == nil && h.tokens.Valid(cookie.Value) {
		return true
	}

	if username, password, ok := r.BasicAuth(); ok {
		return h.options.Admin(username, password)
	}

	header := r.Header.Get("Authorization")

	return h.tokens.Valid(strings.TrimPrefix(header, "Bearer "))
}
