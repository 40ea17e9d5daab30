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
	"crypto/subtle"

	"github.com/spf13/pflag"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password123"
)

// Options control the fake service's behaviour.
type Options struct {
	// AdminUsername is the only user that can authenticate.
	AdminUsername string

	// AdminPassword is the admin user's password.
	AdminPassword string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.AdminUsername, "admin-username", DefaultAdminUsername, "Username that can be exchanged for a token")
	f.StringVar(&o.AdminPassword, "admin-password", DefaultAdminPassword, "Password that can be exchanged for a token")
}

// Admin returns true if the credentials are the admin's.
func (o *Options) Admin(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(o.AdminUsername))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(o.AdminPassword))

	return u&p == 1
}
