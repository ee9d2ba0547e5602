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
	"context"
	"log/slog"

	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/httpauth/internal/respond"
	"rivaas.dev/httpauth/middleware"
	"rivaas.dev/router"
)

// Option defines functional options for bearerauth middleware configuration.
type Option func(*config)

type config struct {
	extractorOpts       []httpauth.Option
	unauthorizedHandler func(c *router.Context, rej *httpauth.Rejection)
	skipPaths           map[string]bool
	logger              *slog.Logger
	formatter           errors.Formatter
	observer            httpauth.Observer
}

func defaultConfig() *config {
	return &config{
		skipPaths: make(map[string]bool),
		logger:    respond.DiscardLogger(),
	}
}

// New returns a middleware that extracts a Bearer token (RFC 6750).
//
// The token is stored in the request context and retrieved with [Get] or
// [Token]. Rejected requests get the configured status, a
// `WWW-Authenticate: Bearer` challenge and a message naming the cause.
//
// Example:
//
//	r := router.MustNew()
//	r.Use(bearerauth.New(bearerauth.WithSkipPaths("/health")))
func New(opts ...Option) router.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	extractor := httpauth.NewBearerExtractor(cfg.extractorOpts...)
	responder := &respond.Responder{
		Logger:    cfg.logger,
		Formatter: cfg.formatter,
		Observer:  cfg.observer,
	}

	return func(c *router.Context) {
		if cfg.skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		bearer, err := extractor.Extract(c.Request.Header)
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

		responder.Accept(httpauth.SchemeBearer)

		ctx := context.WithValue(c.Request.Context(), middleware.AuthBearerKey, bearer)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Get retrieves the extracted token from the request context.
func Get(c *router.Context) (httpauth.Bearer, bool) {
	bearer, ok := c.Request.Context().Value(middleware.AuthBearerKey).(httpauth.Bearer)
	return bearer, ok
}

// Token returns the extracted token, or "" if the middleware did not run.
func Token(c *router.Context) string {
	bearer, _ := Get(c)
	return bearer.Token
}
