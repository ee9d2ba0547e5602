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

//go:build integration && !httpauth_nobasic && !httpauth_nobearer

package middleware_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rivaas.dev/httpauth/middleware/basicauth"
	"rivaas.dev/httpauth/middleware/bearerauth"
	"rivaas.dev/router"
)

// newServer serves /basic and /bearer, each echoing the extracted credentials.
func newServer(basicOpts []basicauth.Option, bearerOpts []bearerauth.Option) *httptest.Server {
	r := router.MustNew()

	r.GET("/basic", basicauth.New(basicOpts...), func(c *router.Context) {
		creds, _ := basicauth.Get(c)
		password := "none"
		if creds.HasPassword {
			password = fmt.Sprintf("%q", creds.Password)
		}
		//nolint:errcheck // Test handler
		c.Stringf(http.StatusOK, "Got %s and %s", creds.Username, password)
	})

	r.GET("/bearer", bearerauth.New(bearerOpts...), func(c *router.Context) {
		//nolint:errcheck // Test handler
		c.Stringf(http.StatusOK, "Got %s", bearerauth.Token(c))
	})

	return httptest.NewServer(r)
}

// get performs a GET against srv with the request customized by prepare.
func get(srv *httptest.Server, path string, prepare func(*http.Request)) (int, string, http.Header) {
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	Expect(err).NotTo(HaveOccurred())
	if prepare != nil {
		prepare(req)
	}

	resp, err := srv.Client().Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close() //nolint:errcheck // Test cleanup

	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	return resp.StatusCode, string(body), resp.Header
}

// serve hands a request with a raw Authorization value straight to srv's handler.
// Header values the wire would trim, such as a trailing space, reach the middleware intact.
func serve(srv *httptest.Server, path, authorization string) (int, string) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", authorization)
	w := httptest.NewRecorder()
	srv.Config.Handler.ServeHTTP(w, req)

	return w.Code, w.Body.String()
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func withBasic(user, password string) func(*http.Request) {
	return func(req *http.Request) {
		req.SetBasicAuth(user, password)
	}
}

var _ = Describe("Credential extraction over HTTP", Label("integration", "httpauth"), func() {
	Describe("default configuration", func() {
		var srv *httptest.Server

		BeforeEach(func() {
			srv = newServer(nil, nil)
			DeferCleanup(srv.Close)
		})

		It("should extract well-formed credentials", func() {
			code, body, _ := get(srv, "/basic", withBasic("My Username", "My Password"))
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(Equal(`Got My Username and "My Password"`))

			code, body, _ = get(srv, "/bearer", withBearer("My Token"))
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Got My Token"))
		})

		It("should accept empty credentials", func() {
			code, body, _ := get(srv, "/basic", withBasic("", ""))
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(Equal(`Got  and ""`))

			// Trailing whitespace of a field value is dropped when the server reads it.
			code, body, _ = get(srv, "/bearer", withBearer(""))
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(Equal("`Authorization` header must be a bearer token"))

			code, body = serve(srv, "/bearer", "Bearer ")
			Expect(code).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Got "))
		})

		It("should reject credentials of the other scheme", func() {
			code, body, header := get(srv, "/basic", withBearer("123124nfienrign"))
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(Equal("`Authorization` header must be for basic authentication"))
			Expect(header.Get("WWW-Authenticate")).To(Equal("Basic"))

			code, body, header = get(srv, "/bearer", withBasic("123", "Hello"))
			Expect(code).To(Equal(http.StatusUnauthorized))
			Expect(body).To(Equal("`Authorization` header must be a bearer token"))
			Expect(header.Get("WWW-Authenticate")).To(Equal("Bearer"))
		})

		It("should reject requests without an Authorization header", func() {
			for _, path := range []string{"/basic", "/bearer"} {
				code, body, _ := get(srv, path, nil)
				Expect(code).To(Equal(http.StatusUnauthorized))
				Expect(body).To(Equal("`Authorization` header is missing"))
			}
		})
	})

	Describe("custom status", func() {
		It("should answer with the configured status and the default messages", func() {
			srv := newServer(
				[]basicauth.Option{basicauth.WithStatus(http.StatusTeapot)},
				[]bearerauth.Option{bearerauth.WithStatus(http.StatusTeapot)},
			)
			DeferCleanup(srv.Close)

			code, body, _ := get(srv, "/basic", withBearer("My Crap Username"))
			Expect(code).To(Equal(http.StatusTeapot))
			Expect(body).To(Equal("`Authorization` header must be for basic authentication"))

			code, body, _ = get(srv, "/bearer", func(req *http.Request) {
				req.SetBasicAuth("My Crap Token", "")
			})
			Expect(code).To(Equal(http.StatusTeapot))
			Expect(body).To(Equal("`Authorization` header must be a bearer token"))
		})
	})

	Describe("custom message", func() {
		It("should replace the message of every rejection", func() {
			srv := newServer(
				[]basicauth.Option{basicauth.WithMessage("who are you?"), basicauth.WithRealm("staff")},
				nil,
			)
			DeferCleanup(srv.Close)

			for _, prepare := range []func(*http.Request){nil, withBearer("x")} {
				code, body, header := get(srv, "/basic", prepare)
				Expect(code).To(Equal(http.StatusUnauthorized))
				Expect(body).To(Equal("who are you?"))
				Expect(header.Get("WWW-Authenticate")).To(Equal(`Basic realm="staff"`))
			}
		})
	})
})
