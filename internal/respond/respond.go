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

// Package respond writes extraction outcomes for the framework adapters.
package respond

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
)

// Responder writes rejections and reports outcomes.
// The zero value writes plain text responses and logs nothing.
type Responder struct {
	// Logger receives a debug record per rejection. Nil disables logging.
	Logger *slog.Logger

	// Formatter renders rejection bodies. Nil writes the message as text/plain.
	Formatter errors.Formatter

	// Observer is notified of every outcome. Nil disables it.
	Observer httpauth.Observer
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Accept records a successful extraction for scheme s.
func (r *Responder) Accept(s httpauth.Scheme) {
	if r.Observer != nil {
		r.Observer.ObserveSuccess(s)
	}
}

// Reject notifies and writes rej to w.
func (r *Responder) Reject(w http.ResponseWriter, req *http.Request, rej *httpauth.Rejection) {
	r.Notify(req, rej)
	r.Write(w, req, rej)
}

// Notify reports rej to the observer and the logger without writing anything.
func (r *Responder) Notify(req *http.Request, rej *httpauth.Rejection) {
	if r.Observer != nil {
		r.Observer.ObserveRejection(rej)
	}

	if r.Logger != nil {
		r.Logger.DebugContext(req.Context(), "authorization rejected",
			"scheme", string(rej.Scheme),
			"kind", rej.Kind.String(),
			"status", rej.Status,
			"method", req.Method,
			"path", req.URL.Path,
		)
	}
}

// Write writes rej to w. The WWW-Authenticate challenge is always set when
// rej carries one, whatever the body format.
func (r *Responder) Write(w http.ResponseWriter, req *http.Request, rej *httpauth.Rejection) {
	if r.Formatter == nil {
		rej.ServeHTTP(w, req)
		return
	}

	resp := r.Formatter.Format(req, rej)

	h := w.Header()
	if rej.Challenge != "" {
		h.Set(httpauth.HeaderWWWAuthenticate, rej.Challenge)
	}
	for k, values := range resp.Headers {
		for _, v := range values {
			h.Add(k, v)
		}
	}
	if resp.ContentType != "" {
		h.Set("Content-Type", resp.ContentType)
	}

	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp.Body); err != nil && r.Logger != nil {
		r.Logger.WarnContext(req.Context(), "failed to encode rejection body", "error", err)
	}
}
