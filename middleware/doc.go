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

/*
Package middleware provides rivaas/router middlewares that extract HTTP
authentication credentials.

This package contains shared types and test helpers. Each middleware is
provided in its own sub-package:

  - basicauth: `Authorization: Basic ...` credentials (RFC 7617)
  - bearerauth: `Authorization: Bearer ...` tokens (RFC 6750)

# Usage

	import (
	    "rivaas.dev/router"
	    "rivaas.dev/httpauth/middleware/basicauth"
	    "rivaas.dev/httpauth/middleware/bearerauth"
	)

	r := router.MustNew()
	r.Group("/admin", basicauth.New(basicauth.WithRealm("Admin"))).
	    GET("/dashboard", dashboard)
	r.Group("/api", bearerauth.New()).
	    GET("/data", data)

The middlewares only parse. Handlers read the credential with the getters of
each package and decide whether it is valid:

	func dashboard(c *router.Context) {
	    creds, _ := basicauth.Get(c)
	    if !users.Check(creds.Username, creds.Password) {
	        c.Status(http.StatusForbidden)
	        return
	    }
	}

# Middleware Ordering

Place the auth middlewares after recovery, request ID and access logging so
rejected requests are still logged, and before application handlers.

# Context Values

Credentials are stored in the request context under the keys exported by this
package (AuthBasicKey, AuthBearerKey). Prefer the getter functions of the
sub-packages.

# Thread Safety

All middlewares are safe for concurrent use. They keep no state between
requests.
*/
package middleware
