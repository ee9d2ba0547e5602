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
	"errors"
	"net/http"
	"strconv"
)

// Kind identifies why a credential could not be extracted.
// Kind values are comparable errors, so they work with errors.Is.
type Kind uint8

// Failure kinds. All of them are client-input errors and map to 401.
const (
	// MissingHeader means the Authorization header is absent.
	MissingHeader Kind = iota + 1

	// HeaderNotText means the header is present but its bytes are not valid UTF-8.
	HeaderNotText

	// InvalidScheme means the header does not start with the expected scheme prefix.
	InvalidScheme

	// InvalidBase64 means the Basic payload is not valid standard base64.
	InvalidBase64

	// InvalidUTF8 means the decoded Basic payload is not valid UTF-8.
	InvalidUTF8
)

// Error returns a scheme-agnostic message for the failure.
func (k Kind) Error() string {
	switch k {
	case MissingHeader:
		return msgMissing
	case HeaderNotText:
		return msgNotText
	case InvalidScheme:
		return "`Authorization` header uses an unexpected authentication scheme"
	case InvalidBase64:
		return msgBase64
	case InvalidUTF8:
		return msgUTF8
	default:
		return "httpauth: unknown failure kind " + strconv.Itoa(int(k))
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case MissingHeader:
		return "MissingHeader"
	case HeaderNotText:
		return "HeaderNotText"
	case InvalidScheme:
		return "InvalidScheme"
	case InvalidBase64:
		return "InvalidBase64"
	case InvalidUTF8:
		return "InvalidUTF8"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Code returns a stable machine-readable code, e.g. "missing_header".
func (k Kind) Code() string {
	switch k {
	case MissingHeader:
		return "missing_header"
	case HeaderNotText:
		return "header_not_text"
	case InvalidScheme:
		return "invalid_scheme"
	case InvalidBase64:
		return "invalid_base64"
	case InvalidUTF8:
		return "invalid_utf8"
	default:
		return "unauthorized"
	}
}

const (
	msgMissing     = "`Authorization` header is missing"
	msgNotText     = "`Authorization` header contains invalid characters"
	msgWrongBasic  = "`Authorization` header must be for basic authentication"
	msgWrongBearer = "`Authorization` header must be a bearer token"
	msgBase64      = "`Authorization` header could not be decoded as base64"
	msgUTF8        = "`Authorization` header credentials are not valid UTF-8"
)

// Message returns the user-facing message for a failure of kind k while
// extracting credentials for scheme s.
func Message(k Kind, s Scheme) string {
	if k != InvalidScheme {
		return k.Error()
	}

	switch s {
	case SchemeBasic:
		return msgWrongBasic
	case SchemeBearer:
		return msgWrongBearer
	default:
		return k.Error()
	}
}

// Rejection is the failure result of an extraction: an HTTP status, a
// message and the WWW-Authenticate challenge to send back.
//
// Rejection implements http.Handler, writing itself as a plain text response,
// and the ErrorType and ErrorCode interfaces of rivaas.dev/errors so it can be
// rendered by any of its formatters.
type Rejection struct {
	// Kind is the failure cause. Zero for errors that did not come from parsing.
	Kind Kind

	// Scheme is the scheme the extractor expected.
	Scheme Scheme

	// Status is the HTTP status code, 401 unless overridden.
	Status int

	// Message is the human-readable reason sent as the response body.
	Message string

	// Challenge is the WWW-Authenticate header value. Empty means no challenge.
	Challenge string
}

// Reject maps a failure kind to its default rejection for scheme s:
// status 401, the kind's message and a bare scheme challenge.
// The result depends only on its arguments.
func Reject(k Kind, s Scheme) *Rejection {
	return &Rejection{
		Kind:      k,
		Scheme:    s,
		Status:    http.StatusUnauthorized,
		Message:   Message(k, s),
		Challenge: s.Challenge(""),
	}
}

// RejectionFrom converts an extraction error into a Rejection.
//
// A *Rejection anywhere in the chain is returned as is. A bare Kind becomes a
// 401 without a challenge. Any other error becomes a 401 carrying its text.
// RejectionFrom returns nil for a nil error.
func RejectionFrom(err error) *Rejection {
	if err == nil {
		return nil
	}

	var rej *Rejection
	if errors.As(err, &rej) {
		return rej
	}

	var k Kind
	if errors.As(err, &k) {
		return &Rejection{Kind: k, Status: http.StatusUnauthorized, Message: k.Error()}
	}

	return &Rejection{Status: http.StatusUnauthorized, Message: err.Error()}
}

// Error returns the rejection message.
func (r *Rejection) Error() string {
	return r.Message
}

// Unwrap returns the failure kind, or nil when there is none.
func (r *Rejection) Unwrap() error {
	if r.Kind == 0 {
		return nil
	}

	return r.Kind
}

// HTTPStatus returns the status code to respond with.
func (r *Rejection) HTTPStatus() int {
	return r.Status
}

// Code returns the machine-readable code of the failure kind.
func (r *Rejection) Code() string {
	return r.Kind.Code()
}

// Header returns the response headers the rejection requires.
func (r *Rejection) Header() http.Header {
	h := make(http.Header, 1)
	if r.Challenge != "" {
		h.Set(HeaderWWWAuthenticate, r.Challenge)
	}

	return h
}

// ServeHTTP writes the rejection as a text/plain response.
func (r *Rejection) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if r.Challenge != "" {
		w.Header().Set(HeaderWWWAuthenticate, r.Challenge)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.Status)
	//nolint:errcheck // Nothing to do if the client went away
	w.Write([]byte(r.Message))
}
