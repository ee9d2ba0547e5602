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

// Package bearerauth provides Bearer token extraction middleware for
// rivaas/router.
//
// The middleware reads a token from the Authorization header (RFC 6750) and
// stores it in the request context. The token is opaque: it is neither
// validated nor verified, so signature checks and lookups stay with the
// application. Requests without a Bearer credential are answered with
// 401 Unauthorized and a `WWW-Authenticate: Bearer` challenge.
//
// # Basic Usage
//
//	import "rivaas.dev/httpauth/middleware/bearerauth"
//
//	api := r.Group("/api", bearerauth.New(bearerauth.WithRealm("api")))
//	api.GET("/me", func(c *router.Context) {
//	    claims, err := verify(bearerauth.Token(c))
//	    // ...
//	})
//
// The options mirror those of the basicauth package.
package bearerauth
