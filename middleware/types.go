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

package middleware

// ContextKey is a type for context keys to avoid collisions with other packages.
type ContextKey string

// Context keys used by the auth middlewares.
const (
	// AuthBasicKey is the context key for the extracted httpauth.Basic value.
	// Used by: basicauth middleware (sets it).
	AuthBasicKey ContextKey = "httpauth.basic"

	// AuthBearerKey is the context key for the extracted httpauth.Bearer value.
	// Used by: bearerauth middleware (sets it).
	AuthBearerKey ContextKey = "httpauth.bearer"
)
