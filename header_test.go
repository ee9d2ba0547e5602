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

package httpauth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  http.Header
		lookup  string
		want    string
		wantErr error
	}{
		{
			name:    "absent",
			header:  http.Header{},
			lookup:  "Authorization",
			wantErr: MissingHeader,
		},
		{
			name:    "nil header map",
			header:  nil,
			lookup:  "Authorization",
			wantErr: MissingHeader,
		},
		{
			name:    "key without values",
			header:  http.Header{"Authorization": {}},
			lookup:  "Authorization",
			wantErr: MissingHeader,
		},
		{
			name:   "present but empty",
			header: http.Header{"Authorization": {""}},
			lookup: "Authorization",
			want:   "",
		},
		{
			name:   "non-canonical lookup name",
			header: http.Header{"Authorization": {"Bearer abc"}},
			lookup: "authorization",
			want:   "Bearer abc",
		},
		{
			name:   "first value wins",
			header: http.Header{"Authorization": {"Bearer first", "Bearer second"}},
			lookup: "Authorization",
			want:   "Bearer first",
		},
		{
			name:   "multi-byte UTF-8",
			header: http.Header{"Authorization": {"Bearer jeton-été"}},
			lookup: "Authorization",
			want:   "Bearer jeton-été",
		},
		{
			name:    "invalid UTF-8",
			header:  http.Header{"Authorization": {"Bearer \xff\xfe"}},
			lookup:  "Authorization",
			wantErr: HeaderNotText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LookupHeader(tt.header, tt.lookup)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemeChallenge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Basic", SchemeBasic.Challenge(""))
	assert.Equal(t, `Basic realm="Admin Area"`, SchemeBasic.Challenge("Admin Area"))
	assert.Equal(t, `Bearer realm="a \"quoted\" \\ realm"`, SchemeBearer.Challenge(`a "quoted" \ realm`))
}

func TestSchemePrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Basic ", SchemeBasic.Prefix())
	assert.Equal(t, "Bearer ", SchemeBearer.Prefix())
	assert.Len(t, SchemeBearer.Prefix(), 7)
	assert.Len(t, SchemeBasic.Prefix(), 6)
}
