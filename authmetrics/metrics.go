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

// Package authmetrics counts credential extractions with Prometheus.
//
// A Recorder implements httpauth.Observer and can be passed to any of the
// framework adapters:
//
//	reg := prometheus.NewRegistry()
//	rec := authmetrics.MustNew(authmetrics.WithRegisterer(reg))
//	r.Use(bearerauth.New(bearerauth.WithObserver(rec)))
//
// It exports one counter, httpauth_extractions_total, labelled by scheme
// ("Basic", "Bearer") and outcome ("ok" or the rejection code, e.g.
// "missing_header").
package authmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"rivaas.dev/httpauth"
)

// OutcomeOK is the outcome label of a successful extraction.
const OutcomeOK = "ok"

// Option defines functional options for Recorder configuration.
type Option func(*config)

type config struct {
	registerer prometheus.Registerer
	namespace  string
	subsystem  string
}

func defaultConfig() *config {
	return &config{
		registerer: prometheus.DefaultRegisterer,
		namespace:  "httpauth",
	}
}

// WithRegisterer sets the registry the counter is registered with.
// Default: prometheus.DefaultRegisterer
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *config) {
		cfg.registerer = reg
	}
}

// WithNamespace sets the metric namespace.
// Default: "httpauth"
func WithNamespace(ns string) Option {
	return func(cfg *config) {
		cfg.namespace = ns
	}
}

// WithSubsystem sets the metric subsystem. Default: none.
func WithSubsystem(subsystem string) Option {
	return func(cfg *config) {
		cfg.subsystem = subsystem
	}
}

// Recorder counts extraction outcomes. It is safe for concurrent use.
type Recorder struct {
	extractions *prometheus.CounterVec
}

// New creates a Recorder and registers its counter.
// If an identical counter is already registered, it is reused.
func New(opts ...Option) (*Recorder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.namespace,
		Subsystem: cfg.subsystem,
		Name:      "extractions_total",
		Help:      "Authorization header extractions by scheme and outcome.",
	}, []string{"scheme", "outcome"})

	if err := cfg.registerer.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("authmetrics: register counter: %w", err)
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("authmetrics: conflicting collector registered: %w", err)
		}
		counter = existing
	}

	return &Recorder{extractions: counter}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// ObserveSuccess counts a successful extraction.
func (r *Recorder) ObserveSuccess(s httpauth.Scheme) {
	r.extractions.WithLabelValues(schemeLabel(s), OutcomeOK).Inc()
}

// ObserveRejection counts a rejected extraction under its code.
func (r *Recorder) ObserveRejection(rej *httpauth.Rejection) {
	r.extractions.WithLabelValues(schemeLabel(rej.Scheme), rej.Code()).Inc()
}

func schemeLabel(s httpauth.Scheme) string {
	if s == "" {
		return "unknown"
	}

	return string(s)
}

var _ httpauth.Observer = (*Recorder)(nil)
