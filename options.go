// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httpauth

import "net/http"

// Option defines functional options for extractor configuration.
type Option func(*config)

// config holds the rejection overrides of an extractor.
type config struct {
	// status replaces the 401 on every rejection
	status int

	// message replaces the per-kind message when non-empty
	message string

	// realm is added to the WWW-Authenticate challenge when non-empty
	realm string
}

// defaultConfig returns the configuration that yields the plain Reject mapping.
func defaultConfig() *config {
	return &config{
		status: http.StatusUnauthorized,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return *cfg
}

// reject builds the rejection for kind k, applying the overrides.
func (c *config) reject(k Kind, s Scheme) *Rejection {
	rej := Reject(k, s)
	rej.Status = c.status
	if c.message != "" {
		rej.Message = c.message
	}
	rej.Challenge = s.Challenge(c.realm)

	return rej
}

// WithStatus sets the status code sent on every rejection.
// Codes outside 100-599 cannot be written by net/http and are ignored.
// Default: 401 Unauthorized
//
// Example:
//
//	httpauth.NewBearerExtractor(httpauth.WithStatus(http.StatusForbidden))
func WithStatus(code int) Option {
	return func(cfg *config) {
		if code < 100 || code > 599 {
			return
		}
		cfg.status = code
	}
}

// WithMessage replaces the message of every rejection with msg.
// The failure kind is still available through errors.Is.
//
// Example:
//
//	httpauth.NewBasicExtractor(httpauth.WithMessage("login required"))
func WithMessage(msg string) Option {
	return func(cfg *config) {
		cfg.message = msg
	}
}

// WithRealm adds a realm parameter to the WWW-Authenticate challenge.
// Browsers show the realm in their login prompt.
//
// Example:
//
//	httpauth.NewBasicExtractor(httpauth.WithRealm("Admin Area"))
//	// WWW-Authenticate: Basic realm="Admin Area"
func WithRealm(realm string) Option {
	return func(cfg *config) {
		cfg.realm = realm
	}
}
