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

package bearerauth

import (
	"log/slog"

	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/router"
)

// WithRealm sets the realm attribute of the `WWW-Authenticate: Bearer` challenge.
func WithRealm(realm string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithRealm(realm))
	}
}

// WithStatus sets the status code of rejections. Default: 401 Unauthorized
func WithStatus(code int) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithStatus(code))
	}
}

// WithMessage replaces the rejection message for every failure kind.
func WithMessage(msg string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithMessage(msg))
	}
}

// WithUnauthorizedHandler sets a custom handler for rejected requests.
// The challenge header is set before the handler runs.
//
// Example:
//
//	bearerauth.New(bearerauth.WithUnauthorizedHandler(func(c *router.Context, rej *httpauth.Rejection) {
//	    c.JSON(rej.Status, map[string]string{"error": rej.Code()})
//	}))
func WithUnauthorizedHandler(handler func(c *router.Context, rej *httpauth.Rejection)) Option {
	return func(cfg *config) {
		cfg.unauthorizedHandler = handler
	}
}

// WithSkipPaths sets paths that should bypass extraction.
func WithSkipPaths(paths ...string) Option {
	return func(cfg *config) {
		for _, path := range paths {
			cfg.skipPaths[path] = true
		}
	}
}

// WithLogger sets the logger receiving a debug record per rejection.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithFormatter renders rejection bodies with a rivaas.dev/errors formatter.
func WithFormatter(formatter errors.Formatter) Option {
	return func(cfg *config) {
		cfg.formatter = formatter
	}
}

// WithObserver sets an observer notified of every extraction outcome.
func WithObserver(observer httpauth.Observer) Option {
	return func(cfg *config) {
		cfg.observer = observer
	}
}
