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

// Package httpauth extracts HTTP authentication credentials from the
// Authorization request header.
//
// Two extractors are provided, one per scheme:
//
//   - Bearer (RFC 6750): `Authorization: Bearer <token>` yields a [Bearer]
//     holding the raw token text.
//   - Basic (RFC 7617): `Authorization: Basic <base64(user:password)>` yields a
//     [Basic] holding the user identifier and an optional password.
//
// The package only parses. Checking a token or a password against a backing
// store is left to the caller.
//
// # Basic Usage
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    creds, err := httpauth.ExtractBasic(r.Header)
//	    if err != nil {
//	        httpauth.RejectionFrom(err).ServeHTTP(w, r)
//	        return
//	    }
//	    if creds.HasPassword {
//	        fmt.Fprintf(w, "user %q with password", creds.Username)
//	    }
//	}
//
// # Rejections
//
// Every failure is reported as a [*Rejection]: status 401, a distinct message
// per failure [Kind], and a `WWW-Authenticate` challenge naming the expected
// scheme. Rejections unwrap to their Kind:
//
//	_, err := httpauth.ExtractBearer(r.Header)
//	if errors.Is(err, httpauth.MissingHeader) {
//	    // no Authorization header at all
//	}
//
// # Customization
//
// The status code, the message and the challenge realm can be changed per
// extractor, and [Map] derives an application type from the parsed credential:
//
//	type APIKey string
//
//	keys := httpauth.Map(
//	    httpauth.NewBearerExtractor(httpauth.WithStatus(http.StatusForbidden)),
//	    func(b httpauth.Bearer) APIKey { return APIKey(b.Token) },
//	)
//
// # Framework Integration
//
// Middleware for rivaas.dev/router lives in middleware/basicauth and
// middleware/bearerauth. Adapters for net/http, gin and echo live in authhttp,
// ginauth and echoauth.
//
// # Build Tags
//
// Support for a scheme can be compiled out with the httpauth_nobasic or
// httpauth_nobearer build tags. At least one scheme must remain enabled.
//
// # Security Considerations
//
// No limit is imposed on the header length; configure it on the server
// (http.Server.MaxHeaderBytes). Basic credentials are only base64 encoded, so
// always serve them over TLS.
package httpauth
