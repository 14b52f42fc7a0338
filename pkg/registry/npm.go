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

// Package registry looks up release metadata from the npm registry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the public npm registry.
	DefaultEndpoint = "https://registry.npmjs.org"
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// dateLayout is the human-readable format used in the index header.
	dateLayout = "January 2, 2006"
)

// Client reads package documents from an npm-compatible registry.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Config holds configuration for the registry client.
type Config struct {
	Endpoint string // Default: https://registry.npmjs.org
	Timeout  time.Duration
}

// NewClient creates a registry client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// packageDocument is the subset of the npm package document we read.
type packageDocument struct {
	Time map[string]string `json:"time"`
}

// ReleaseDate returns the human-formatted release date of a package
// version, e.g. "August 30, 2026". The caller treats any error as
// "date unavailable" and omits it from the rendered header.
func (c *Client) ReleaseDate(ctx context.Context, pkg, version string) (string, error) {
	url := c.endpoint + "/" + pkg

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned %d for %s", resp.StatusCode, pkg)
	}

	var doc packageDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("failed to decode package document: %w", err)
	}

	stamp, ok := doc.Time[version]
	if !ok {
		return "", fmt.Errorf("no release time for %s@%s", pkg, version)
	}

	released, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return "", fmt.Errorf("unparseable release time %q: %w", stamp, err)
	}
	return released.Format(dateLayout), nil
}

// VersionURL returns the npm web page for a package version.
func VersionURL(pkg, version string) string {
	return "https://www.npmjs.com/package/" + pkg + "/v/" + version
}

// CountHistoricalVersions counts archived version artifacts in dir.
// A missing or unreadable directory counts as 0.
func CountHistoricalVersions(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	n := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		n++
	}
	return n
}
