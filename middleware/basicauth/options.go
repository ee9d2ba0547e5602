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

package basicauth

import (
	"log/slog"

	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/router"
)

// WithRealm sets the authentication realm of the challenge.
// The realm is displayed in the browser's authentication prompt.
// Default: none (`WWW-Authenticate: Basic`)
//
// Example:
//
//	basicauth.New(basicauth.WithRealm("Admin Area"))
func WithRealm(realm string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithRealm(realm))
	}
}

// WithStatus sets the status code of rejections.
// Default: 401 Unauthorized
//
// Example:
//
//	basicauth.New(basicauth.WithStatus(http.StatusForbidden))
func WithStatus(code int) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithStatus(code))
	}
}

// WithMessage replaces the rejection message for every failure kind.
//
// Example:
//
//	basicauth.New(basicauth.WithMessage("login required"))
func WithMessage(msg string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithMessage(msg))
	}
}

// WithUnauthorizedHandler sets a custom handler for rejected requests.
// The challenge header is already set when the handler runs and the chain is
// aborted after it returns.
//
// Example:
//
//	basicauth.New(basicauth.WithUnauthorizedHandler(func(c *router.Context, rej *httpauth.Rejection) {
//	    c.String(rej.Status, "Access denied")
//	}))
func WithUnauthorizedHandler(handler func(c *router.Context, rej *httpauth.Rejection)) Option {
	return func(cfg *config) {
		cfg.unauthorizedHandler = handler
	}
}

// WithSkipPaths sets paths that should bypass extraction.
// Useful for health checks or public endpoints within protected groups.
//
// Example:
//
//	basicauth.New(basicauth.WithSkipPaths("/health", "/public"))
func WithSkipPaths(paths ...string) Option {
	return func(cfg *config) {
		for _, path := range paths {
			cfg.skipPaths[path] = true
		}
	}
}

// WithLogger sets the logger receiving a debug record per rejection.
//
// Example:
//
//	basicauth.New(basicauth.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithFormatter renders rejection bodies with a rivaas.dev/errors formatter
// instead of plain text.
//
// Example:
//
//	basicauth.New(basicauth.WithFormatter(errors.NewRFC9457("https://api.example.com/problems")))
func WithFormatter(formatter errors.Formatter) Option {
	return func(cfg *config) {
		cfg.formatter = formatter
	}
}

// WithObserver sets an observer notified of every extraction outcome,
// such as an authmetrics.Recorder.
func WithObserver(observer httpauth.Observer) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}
