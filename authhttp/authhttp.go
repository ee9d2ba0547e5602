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

// Package authhttp provides credential extraction middleware for net/http
// handlers and routers built on it, such as chi.
//
//	r := chi.NewRouter()
//	r.Use(authhttp.Bearer(authhttp.WithRealm("api")))
//	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
//	    token, _ := authhttp.FromContext[httpauth.Bearer](r.Context())
//	    // ...
//	})
//
// Any [httpauth.Extractor] can be mounted with [New]; the credential is then
// retrieved by its type.
package authhttp

import (
	"context"
	"log/slog"
	"net/http"

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

func defaultConfig() *config {
	return &config{logger: respond.DiscardLogger()}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRealm sets the challenge realm of the extractors built by Basic and
// Bearer. New uses its extractor as given.
func WithRealm(realm string) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithRealm(realm))
	}
}

// WithStatus sets the rejection status of the extractors built by Basic and
// Bearer.
func WithStatus(code int) Option {
	return func(cfg *config) {
		cfg.extractorOpts = append(cfg.extractorOpts, httpauth.WithStatus(code))
	}
}

// WithMessage sets the rejection message of the extractors built by Basic and
// Bearer.
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

// contextKey is keyed by credential type so extractors of different types
// can be stacked on one request.
type contextKey[T any] struct{}

// New returns a middleware running e on every request. The credential is
// stored in the request context, where FromContext[T] finds it. Rejected
// requests never reach next.
func New[T any](e httpauth.Extractor[T], opts ...Option) func(http.Handler) http.Handler {
	return newMiddleware(e, newConfig(opts))
}

// newMiddleware builds the middleware from an already applied config.
func newMiddleware[T any](e httpauth.Extractor[T], cfg *config) func(http.Handler) http.Handler {
	responder := &respond.Responder{
		Logger:    cfg.logger,
		Formatter: cfg.formatter,
		Observer:  cfg.observer,
	}
	scheme := httpauth.SchemeOf(e)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := e.Extract(r.Header)
			if err != nil {
				responder.Reject(w, r, httpauth.RejectionFrom(err))
				return
			}

			responder.Accept(scheme)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), v)))
		})
	}
}

// NewContext returns a copy of ctx carrying v.
func NewContext[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, v)
}

// FromContext returns the credential of type T stored by New.
func FromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(contextKey[T]{}).(T)
	return v, ok
}
