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

package middleware

import (
	"encoding/base64"
	"io"
	"log/slog"
)

// NewTestLogger creates a silent logger for tests.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// NewCaptureLogger creates a debug-level JSON logger writing to w.
// This is useful for testing when you need to verify rejection logs.
//
// Example:
//
//	var buf bytes.Buffer
//	r.Use(bearerauth.New(bearerauth.WithLogger(middleware.NewCaptureLogger(&buf))))
//	// ... serve a request without Authorization
//	strings.Contains(buf.String(), "authorization rejected") // true
func NewCaptureLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// BasicHeader returns the Authorization header value for user and password.
func BasicHeader(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}
