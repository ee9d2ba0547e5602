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

// Package echoauth provides credential extraction middleware for echo.
//
//	e := echo.New()
//	e.Use(echoauth.Bearer())
//	e.GET("/me", func(c echo.Context) error {
//	    token, _ := echoauth.Get[httpauth.Bearer](c)
//	    return c.String(http.StatusOK, token.Token)
//	})
package echoauth

import (
	"log/slog"
	"reflect"

	"github.com/labstack/echo/v4"
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
	skipper       func(echo.Context) bool
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

// WithSkipper sets a function reporting requests that bypass extraction,
// in the manner of the echo middleware package.
func WithSkipper(skipper func(echo.Context) bool) Option {
	return func(cfg *config) {
		cfg.skipper = skipper
	}
}

// Key returns the echo context key under which credentials of type T are stored.
func Key[T any]() string {
	return "httpauth:" + reflect.TypeFor[T]().String()
}

// New returns an echo middleware running e on every request.
// Rejections are written directly and the handler is not called.
func New[T any](e httpauth.Extractor[T], opts ...Option) echo.MiddlewareFunc {
	return newMiddleware(e, newConfig(opts))
}

// newMiddleware builds the middleware from an already applied config.
func newMiddleware[T any](e httpauth.Extractor[T], cfg *config) echo.MiddlewareFunc {
	responder := &respond.Responder{
		Logger:    cfg.logger,
		Formatter: cfg.formatter,
		Observer:  cfg.observer,
	}
	scheme := httpauth.SchemeOf(e)
	key := Key[T]()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.skipper != nil && cfg.skipper(c) {
				return next(c)
			}

			v, err := e.Extract(c.Request().Header)
			if err != nil {
				responder.Reject(c.Response(), c.Request(), httpauth.RejectionFrom(err))
				return nil
			}

			responder.Accept(scheme)
			c.Set(key, v)

			return next(c)
		}
	}
}

// Get returns the credential of type T stored by New.
func Get[T any](c echo.Context) (T, bool) {
	v, ok := c.Get(Key[T]()).(T)
	return v, ok
}
