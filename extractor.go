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

// Extractor produces a credential of type T from request headers.
//
// Implementations must be safe for concurrent use. On failure the error
// should be a *Rejection; adapters pass any other error through RejectionFrom.
type Extractor[T any] interface {
	Extract(h http.Header) (T, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc[T any] func(h http.Header) (T, error)

// Extract calls f(h).
func (f ExtractorFunc[T]) Extract(h http.Header) (T, error) {
	return f(h)
}

// SchemeProvider is implemented by extractors bound to a single scheme.
// Adapters use it to label successful extractions.
type SchemeProvider interface {
	Scheme() Scheme
}

// Map returns an extractor that converts the credential produced by e with fn.
// Rejections from e are returned unchanged and fn is not called.
//
// Example:
//
//	type User struct{ Name string }
//
//	users := httpauth.Map(httpauth.NewBasicExtractor(), func(b httpauth.Basic) User {
//	    return User{Name: b.Username}
//	})
func Map[T, U any](e Extractor[T], fn func(T) U) Extractor[U] {
	return &mapped[T, U]{inner: e, fn: fn}
}

type mapped[T, U any] struct {
	inner Extractor[T]
	fn    func(T) U
}

func (m *mapped[T, U]) Extract(h http.Header) (U, error) {
	v, err := m.inner.Extract(h)
	if err != nil {
		var zero U
		return zero, err
	}

	return m.fn(v), nil
}

// Scheme forwards the scheme of the wrapped extractor, if it has one.
func (m *mapped[T, U]) Scheme() Scheme {
	if sp, ok := m.inner.(SchemeProvider); ok {
		return sp.Scheme()
	}

	return ""
}

// SchemeOf returns the scheme of e, or "" when e does not report one.
func SchemeOf(e any) Scheme {
	if sp, ok := e.(SchemeProvider); ok {
		return sp.Scheme()
	}

	return ""
}

// Observer is notified of extraction outcomes by the framework adapters.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveSuccess(s Scheme)
	ObserveRejection(r *Rejection)
}
