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

// Package ginauth provides credential extraction middleware for gin.
//
//	r := gin.New()
//	r.Use(ginauth.Basic(ginauth.WithRealm("admin")))
//	r.GET("/", func(c *gin.Context) {
//	    creds, _ := ginauth.Get[httpauth.Basic](c)
//	    c.String(http.StatusOK, creds.Username)
//	})
package ginauth

import (
	"log/slog"
	"reflect"

	"github.com/gin-gonic/gin"
	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/httpauth/internal/respond"
)

// Option configures the middleware.
type Option func(*config)

type config struct {
	extractorOpts []httpauth.Option
	logger        *slog.Logger
	formatter     errors.Formatter
	observer      httpauth.Observer
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: respond.DiscardLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRealm sets the challenge realm used by Basic and Bearer.
func WithRealm(realm string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithRealm(realm))
	}
}

// WithStatus sets the rejection status used by Basic and Bearer.
func WithStatus(code int) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithStatus(code))
	}
}

// WithMessage sets the rejection message used by Basic and Bearer.
func WithMessage(msg string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithMessage(msg))
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

// Key returns the gin context key under which credentials of type T are stored.
func Key[T any]() string {
	return "httpauth:" + reflect.TypeFor[T]().String()
}

// New returns a gin middleware running e on every request.
// Rejected requests are answered and aborted.
func New[T any](e httpauth.Extractor[T], opts ...Option) gin.HandlerFunc {
	return newMiddleware(e, newConfig(opts))
}

// newMiddleware builds the middleware from an already applied config.
func newMiddleware[T any](e httpauth.Extractor[T], cfg *config) gin.HandlerFunc {
	responder := &respond.Responder{
		Logger:    cfg.logger,
		Formatter: cfg.formatter,
		Observer:  cfg.observer,
	}
	scheme := httpauth.SchemeOf(e)
	key := Key[T]()

	return func(c *gin.Context) {
		v, err := e.Extract(c.Request.Header)
		if err != nil {
			responder.Reject(c.Writer, c.Request, httpauth.RejectionFrom(err))
			c.Abort()

			return
		}

		responder.Accept(scheme)
		c.Set(key, v)
		c.Next()
	}
}

// Get returns the credential of type T stored by New.
func Get[T any](c *gin.Context) (T, bool) {
	raw, ok := c.Get(Key[T]())
	if !ok {
		var zero T
		return zero, false
	}

	v, ok := raw.(T)

	return v, ok
}
