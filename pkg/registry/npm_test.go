// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/@anthropic-ai/claude-code", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"time": {
				"created": "2025-02-24T00:00:00.000Z",
				"2.0.1": "2026-08-30T18:04:05.123Z",
				"2.0.0": "2026-08-01T09:00:00.000Z"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	date, err := client.ReleaseDate(context.Background(), "@anthropic-ai/claude-code", "2.0.1")
	require.NoError(t, err)
	assert.Equal(t, "August 30, 2026", date)
}

func TestReleaseDateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		version string
	}{
		{"not found", http.StatusNotFound, `{}`, "2.0.1"},
		{"version missing from time map", http.StatusOK, `{"time":{}}`, "2.0.1"},
		{"bad timestamp", http.StatusOK, `{"time":{"2.0.1":"yesterday"}}`, "2.0.1"},
		{"bad json", http.StatusOK, `{`, "2.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{Endpoint: server.URL})
			_, err := client.ReleaseDate(context.Background(), "pkg", tt.version)
			assert.Error(t, err)
		})
	}
}

func TestVersionURL(t *testing.T) {
	assert.Equal(t,
		"https://www.npmjs.com/package/@anthropic-ai/claude-code/v/2.0.1",
		VersionURL("@anthropic-ai/claude-code", "2.0.1"))
}

func TestCountHistoricalVersions(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, 0, CountHistoricalVersions(filepath.Join(dir, "missing")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "v1.0.0.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v1.1.0.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), []byte("x"), 0644))
	assert.Equal(t, 2, CountHistoricalVersions(dir))
}
