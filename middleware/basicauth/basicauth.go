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
	"context"
	"log/slog"

	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/httpauth/internal/respond"
	"rivaas.dev/httpauth/middleware"
	"rivaas.dev/router"
)

// Option defines functional options for basicauth middleware configuration.
type Option func(*config)

// config holds the configuration for the basicauth middleware.
type config struct {
	// extractorOpts configure the rejection status, message and realm
	extractorOpts []httpauth.Option

	// unauthorizedHandler replaces the default rejection response
	unauthorizedHandler func(c *router.Context, rej *httpauth.Rejection)

	// skipPaths are paths that should bypass extraction
	skipPaths map[string]bool

	// logger receives rejection records
	logger *slog.Logger

	// formatter renders rejection bodies; nil means plain text
	formatter errors.Formatter

	// observer is notified of outcomes
	observer httpauth.Observer
}

// defaultConfig returns the default configuration for basicauth middleware.
func defaultConfig() *config {
	return &config{
		skipPaths: make(map[string]bool),
		logger:    respond.DiscardLogger(),
	}
}

// New returns a middleware that extracts HTTP Basic credentials (RFC 7617).
//
// On success the credentials are stored in the request context and the chain
// continues. On failure the request is answered with 401 (or the configured
// status), a `WWW-Authenticate: Basic` challenge and a message naming the
// cause, and the chain is aborted.
//
// Basic usage:
//
//	r := router.MustNew()
//	r.Use(basicauth.New())
//
// With custom realm:
//
//	r.Use(basicauth.New(basicauth.WithRealm("Admin Panel")))
//
// Skip extraction for certain paths:
//
//	r.Use(basicauth.New(basicauth.WithSkipPaths("/health", "/metrics")))
//
// Protect specific route groups:
//
//	admin := r.Group("/admin", basicauth.New())
//	admin.GET("/dashboard", dashboardHandler)
func New(opts ...Option) router.HandlerFunc {
	// Apply options to default config
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	extractor := httpauth.NewBasicExtractor(cfg.extractorOpts...)
	responder := &respond.Responder{
		Logger:    cfg.logger,
		Formatter: cfg.formatter,
		Observer:  cfg.observer,
	}

	return func(c *router.Context) {
		// Check if path should be skipped
		if cfg.skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		creds, err := extractor.Extract(c.Request.Header)
		if err != nil {
			rej := httpauth.RejectionFrom(err)
			if cfg.unauthorizedHandler != nil {
				responder.Notify(c.Request, rej)
				c.Response.Header().Set(httpauth.HeaderWWWAuthenticate, rej.Challenge)
				cfg.unauthorizedHandler(c, rej)
			} else {
				responder.Reject(c.Response, c.Request, rej)
			}
			c.Abort()

			return
		}

		responder.Accept(httpauth.SchemeBasic)

		// Store credentials in request context for later use
		ctx := context.WithValue(c.Request.Context(), middleware.AuthBasicKey, creds)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Get retrieves the extracted credentials from the request context.
// The boolean is false if the middleware did not run for this request.
//
// Example:
//
//	func handler(c *router.Context) {
//	    creds, ok := basicauth.Get(c)
//	    if ok && creds.HasPassword {
//	        // ...
//	    }
//	}
func Get(c *router.Context) (httpauth.Basic, bool) {
	creds, ok := c.Request.Context().Value(middleware.AuthBasicKey).(httpauth.Basic)
	return creds, ok
}

// Username retrieves the extracted user identifier from the request context.
// Returns an empty string if no credentials were extracted.
//
// Example:
//
//	func handler(c *router.Context) {
//	    c.JSON(http.StatusOK, map[string]string{"user": basicauth.Username(c)})
//	}
func Username(c *router.Context) string {
	creds, _ := Get(c)
	return creds.Username
}
