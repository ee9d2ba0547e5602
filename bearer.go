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

//go:build !httpauth_nobearer

package httpauth

import (
	"net/http"
	"strings"
)

// Bearer holds a bearer token (RFC 6750) exactly as sent by the client.
type Bearer struct {
	Token string
}

// ParseBearer parses an Authorization header value of the form
// "Bearer <token>".
//
// The prefix is case-sensitive and must be followed by exactly one space.
// Everything after it is the token, untrimmed and unvalidated; "Bearer "
// yields an empty token. A value with another prefix returns InvalidScheme.
func ParseBearer(value string) (Bearer, error) {
	token, ok := strings.CutPrefix(value, SchemeBearer.Prefix())
	if !ok {
		return Bearer{}, InvalidScheme
	}

	return Bearer{Token: token}, nil
}

// BearerExtractor extracts a Bearer credential from the Authorization header.
// It is safe for concurrent use.
type BearerExtractor struct {
	cfg config
}

// NewBearerExtractor returns a bearer extractor configured by opts.
//
// Example:
//
//	e := httpauth.NewBearerExtractor(httpauth.WithRealm("api"))
//	token, err := e.Extract(r.Header)
func NewBearerExtractor(opts ...Option) *BearerExtractor {
	return &BearerExtractor{cfg: newConfig(opts)}
}

// Scheme returns SchemeBearer.
func (e *BearerExtractor) Scheme() Scheme {
	return SchemeBearer
}

// Extract returns the bearer token of h, or a *Rejection.
func (e *BearerExtractor) Extract(h http.Header) (Bearer, error) {
	value, err := LookupHeader(h, HeaderAuthorization)
	if err != nil {
		return Bearer{}, e.cfg.reject(err.(Kind), SchemeBearer)
	}

	b, err := ParseBearer(value)
	if err != nil {
		return Bearer{}, e.cfg.reject(err.(Kind), SchemeBearer)
	}

	return b, nil
}

var defaultBearer = NewBearerExtractor()

// ExtractBearer extracts a bearer token with the default configuration.
func ExtractBearer(h http.Header) (Bearer, error) {
	return defaultBearer.Extract(h)
}
