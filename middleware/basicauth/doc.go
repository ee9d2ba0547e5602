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

// Package basicauth provides HTTP Basic Authentication extraction middleware
// for rivaas/router.
//
// The middleware parses the Authorization header (RFC 7617) and stores the
// decoded user identifier and optional password in the request context. It
// does not check the credentials: that is left to handlers or to a later
// middleware. Requests without well-formed Basic credentials are answered with
// 401 Unauthorized and a `WWW-Authenticate: Basic` challenge, and the handler
// chain is aborted.
//
// # Basic Usage
//
//	import "rivaas.dev/httpauth/middleware/basicauth"
//
//	r := router.MustNew()
//	r.Use(basicauth.New(basicauth.WithRealm("Restricted Area")))
//
// # Configuration Options
//
//   - Realm: Authentication realm added to the challenge
//   - Status, Message: Override the rejection status code and body
//   - SkipPaths: Paths to skip extraction (e.g., /health, /public)
//   - UnauthorizedHandler: Custom rejection response
//   - Logger, Formatter, Observer: Rejection logging, JSON bodies, metrics
//
// # Accessing Credentials
//
//	func handler(c *router.Context) {
//	    creds, ok := basicauth.Get(c)
//	    if !ok || !creds.HasPassword {
//	        c.Status(http.StatusForbidden)
//	        return
//	    }
//	    // verify creds.Username / creds.Password ...
//	}
//
// # Security Considerations
//
// Basic Authentication sends credentials in base64-encoded form with each request.
// Always use HTTPS in production to protect credentials in transit.
package basicauth
