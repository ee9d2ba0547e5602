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

import (
	"net/http"
	"net/textproto"
	"strings"
	"unicode/utf8"
)

// Header names used by the extractors.
const (
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// Scheme is an HTTP authentication scheme name as it appears in the
// Authorization header.
type Scheme string

// Supported schemes.
const (
	SchemeBasic  Scheme = "Basic"
	SchemeBearer Scheme = "Bearer"
)

// Prefix returns the exact, case-sensitive header prefix for the scheme:
// the scheme name followed by one space.
func (s Scheme) Prefix() string {
	return string(s) + " "
}

// Challenge renders a WWW-Authenticate value for the scheme, with an
// optional realm parameter.
//
//	SchemeBasic.Challenge("")      // Basic
//	SchemeBasic.Challenge("Admin") // Basic realm="Admin"
func (s Scheme) Challenge(realm string) string {
	if realm == "" {
		return string(s)
	}

	return string(s) + ` realm="` + quoteEscape(realm) + `"`
}

// quoteEscape escapes a value for use inside an RFC 7230 quoted-string.
func quoteEscape(v string) string {
	if !strings.ContainsAny(v, `"\`) {
		return v
	}

	var b strings.Builder
	b.Grow(len(v) + 2)
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}

	return b.String()
}

// LookupHeader returns the first value of the named header as text.
//
// Unlike http.Header.Get it tells an absent header from an empty one: it
// returns MissingHeader only when the header is not present at all. A value
// that is not valid UTF-8 yields HeaderNotText. No length limit is applied.
func LookupHeader(h http.Header, name string) (string, error) {
	values, ok := h[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", MissingHeader
	}

	v := values[0]
	if !utf8.ValidString(v) {
		return "", HeaderNotText
	}

	return v, nil
}
