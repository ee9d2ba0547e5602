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

//go:build !httpauth_nobasic && !httpauth_nobearer

package authhttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rivaas.dev/errors"
	"rivaas.dev/httpauth"
	"rivaas.dev/httpauth/middleware"
)

func newRouter(opts ...Option) *chi.Mux {
	r := chi.NewRouter()

	r.With(Basic(opts...)).Get("/basic", func(w http.ResponseWriter, r *http.Request) {
		creds, _ := FromContext[httpauth.Basic](r.Context())
		//nolint:errcheck // Test handler
		w.Write([]byte("user:" + creds.Username))
	})
	r.With(Bearer(opts...)).Get("/bearer", func(w http.ResponseWriter, r *http.Request) {
		bearer, _ := FromContext[httpauth.Bearer](r.Context())
		//nolint:errcheck // Test handler
		w.Write([]byte("token:" + bearer.Token))
	})

	return r
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		path              string
		authHeader        string
		expectedStatus    int
		expectedBody      string
		expectedChallenge string
	}{
		{
			name:           "basic credentials",
			path:           "/basic",
			authHeader:     middleware.BasicHeader("alice", "pw"),
			expectedStatus: http.StatusOK,
			expectedBody:   "user:alice",
		},
		{
			name:           "bearer token",
			path:           "/bearer",
			authHeader:     "Bearer t0k3n",
			expectedStatus: http.StatusOK,
			expectedBody:   "token:t0k3n",
		},
		{
			name:              "basic missing",
			path:              "/basic",
			expectedStatus:    http.StatusUnauthorized,
			expectedBody:      "`Authorization` header is missing",
			expectedChallenge: "Basic",
		},
		{
			name:              "bearer given to basic",
			path:              "/basic",
			authHeader:        "Bearer t0k3n",
			expectedStatus:    http.StatusUnauthorized,
			expectedBody:      "`Authorization` header must be for basic authentication",
			expectedChallenge: "Basic",
		},
		{
			name:              "basic given to bearer",
			path:              "/bearer",
			authHeader:        middleware.BasicHeader("alice", "pw"),
			expectedStatus:    http.StatusUnauthorized,
			expectedBody:      "`Authorization` header must be a bearer token",
			expectedChallenge: "Bearer",
		},
	}

	r := newRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectedChallenge, w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestExtractorOptions(t *testing.T) {
	t.Parallel()

	r := newRouter(WithRealm("chi"), WithStatus(http.StatusTeapot), WithMessage("nope"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bearer", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "nope", w.Body.String())
	assert.Equal(t, `Bearer realm="chi"`, w.Header().Get("WWW-Authenticate"))
}

type user struct {
	Name string
}

func TestNewWithMappedExtractor(t *testing.T) {
	t.Parallel()

	users := httpauth.Map(httpauth.NewBasicExtractor(), func(b httpauth.Basic) user {
		return user{Name: strings.ToUpper(b.Username)}
	})

	var got user
	h := New(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = FromContext[user](r.Context())
		assert.True(t, ok)
		_, basicStored := FromContext[httpauth.Basic](r.Context())
		assert.False(t, basicStored, "Only the mapped value is stored")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("bob", "x")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, user{Name: "BOB"}, got)
}

func TestNewWithExtractorFunc(t *testing.T) {
	t.Parallel()

	apiKey := httpauth.ExtractorFunc[string](func(h http.Header) (string, error) {
		bearer, err := httpauth.ExtractBearer(h)
		if err != nil {
			return "", err
		}
		if bearer.Token != "k1" {
			return "", &httpauth.Rejection{Status: http.StatusForbidden, Message: "unknown key"}
		}

		return bearer.Token, nil
	})

	called := false
	h := New[string](apiKey)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer k2")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "unknown key", w.Body.String())
	assert.Empty(t, w.Header().Get("WWW-Authenticate"))
}

func TestStackedExtractors(t *testing.T) {
	t.Parallel()

	// Both credential types come from the same header, so a Basic header
	// passes the first layer and fails the second.
	h := Basic()(Bearer()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("a", "b")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

type recorder struct {
	ok       []httpauth.Scheme
	rejected []string
}

func (r *recorder) ObserveSuccess(s httpauth.Scheme) { r.ok = append(r.ok, s) }

func (r *recorder) ObserveRejection(rej *httpauth.Rejection) {
	r.rejected = append(r.rejected, rej.Code())
}

func TestFormatterObserverLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := &recorder{}
	r := newRouter(
		WithFormatter(errors.NewSimple()),
		WithObserver(obs),
		WithLogger(middleware.NewCaptureLogger(&buf)),
	)

	req := httptest.NewRequest(http.MethodGet, "/basic", nil)
	req.Header.Set("Authorization", "Basic ###")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_base64", body["code"])

	req = httptest.NewRequest(http.MethodGet, "/bearer", nil)
	req.Header.Set("Authorization", "Bearer abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []httpauth.Scheme{httpauth.SchemeBearer}, obs.ok)
	assert.Equal(t, []string{"invalid_base64"}, obs.rejected)
	assert.Contains(t, buf.String(), `"path":"/basic"`)
}

func TestFromContextEmpty(t *testing.T) {
	t.Parallel()

	_, ok := FromContext[httpauth.Bearer](httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestOptionsAppliedOnce(t *testing.T) {
	t.Parallel()

	builders := map[string]func(...Option) func(http.Handler) http.Handler{
		"basic":  Basic,
		"bearer": Bearer,
		"new": func(opts ...Option) func(http.Handler) http.Handler {
			return New[httpauth.Bearer](httpauth.NewBearerExtractor(), opts...)
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			build(WithRealm("api"), func(*config) { calls++ })

			assert.Equal(t, 1, calls)
		})
	}
}
