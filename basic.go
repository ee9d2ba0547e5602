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

//go:build !httpauth_nobasic

package httpauth

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Basic holds Basic credentials (RFC 7617).
//
// HasPassword reports whether the decoded payload contained a colon. It
// distinguishes "user:" (empty password) from "user" (no password).
type Basic struct {
	Username    string
	Password    string
	HasPassword bool
}

// ParseBasic parses an Authorization header value of the form
// "Basic <base64(user:password)>".
//
// The prefix is case-sensitive. The payload is decoded with strict standard
// padded base64, so non-zero padding bits are rejected, and split at the first colon; further colons belong to the password.
// No trimming or normalization is applied.
func ParseBasic(value string) (Basic, error) {
	payload, ok := strings.CutPrefix(value, SchemeBasic.Prefix())
	if !ok {
		return Basic{}, InvalidScheme
	}

	// The decoder skips CR and LF; they are not part of the alphabet.
	if strings.ContainsAny(payload, "\r\n") {
		return Basic{}, InvalidBase64
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(payload)
	if err != nil {
		return Basic{}, InvalidBase64
	}

	if !utf8.Valid(decoded) {
		return Basic{}, InvalidUTF8
	}

	user, password, found := strings.Cut(string(decoded), ":")

	return Basic{Username: user, Password: password, HasPassword: found}, nil
}

// BasicExtractor extracts Basic credentials from the Authorization header.
// It is safe for concurrent use.
type BasicExtractor struct {
	cfg config
}

// NewBasicExtractor returns a basic extractor configured by opts.
//
// Example:
//
//	e := httpauth.NewBasicExtractor(httpauth.WithRealm("Admin Area"))
//	creds, err := e.Extract(r.Header)
func NewBasicExtractor(opts ...Option) *BasicExtractor {
	return &BasicExtractor{cfg: newConfig(opts)}
}

// Scheme returns SchemeBasic.
func (e *BasicExtractor) Scheme() Scheme {
	return SchemeBasic
}

// Extract returns the Basic credentials of h, or a *Rejection.
func (e *BasicExtractor) Extract(h http.Header) (Basic, error) {
	value, err := LookupHeader(h, HeaderAuthorization)
	if err != nil {
		return Basic{}, e.cfg.reject(err.(Kind), SchemeBasic)
	}

	b, err := ParseBasic(value)
	if err != nil {
		return Basic{}, e.cfg.reject(err.(Kind), SchemeBasic)
	}

	return b, nil
}

var defaultBasic = NewBasicExtractor()

// ExtractBasic extracts Basic credentials with the default configuration.
func ExtractBasic(h http.Header) (Basic, error) {
	return defaultBasic.Extract(h)
}
