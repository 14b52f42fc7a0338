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

// Package catalog models the upstream prompt export and its persisted form.
//
// A prompt arrives as a piece/identifier encoding (literal text segments
// interleaved with integer references into a variable map) and is persisted
// as a markdown artifact: YAML frontmatter followed by the reconstructed
// body. Everything in this package is pure; file IO lives in pkg/syncer.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Prompt is a single extracted prompt from the upstream export.
type Prompt struct {
	// Name is the hierarchical identifier, e.g. "Agent Prompt: Explore".
	Name string `json:"name"`

	// Description may span multiple lines.
	Description string `json:"description"`

	// Version is the upstream release tag the prompt was extracted from.
	Version string `json:"version"`

	// Pieces are the literal text segments of the templated body.
	Pieces []string `json:"pieces"`

	// Identifiers are slot references between adjacent pieces.
	// len(Identifiers) == len(Pieces)-1 when len(Pieces) > 1.
	Identifiers []int `json:"identifiers"`

	// IdentifierMap maps a stringified identifier to a variable reference.
	IdentifierMap map[string]string `json:"identifierMap"`
}

// Export is the upstream JSON document.
type Export struct {
	Version string   `json:"version"`
	Prompts []Prompt `json:"prompts"`
}

// Body returns the prompt's literal text, rebuilt from the encoding.
func (p Prompt) Body() string {
	return Reconstruct(p.Pieces, p.Identifiers, p.IdentifierMap)
}

// Variables returns the variable references used by the prompt, in order
// of first appearance, deduplicated.
func (p Prompt) Variables() []string {
	if len(p.Pieces) < 2 {
		return nil
	}

	var vars []string
	seen := make(map[string]bool)
	for i := 0; i < len(p.Pieces)-1 && i < len(p.Identifiers); i++ {
		ref, ok := p.IdentifierMap[fmt.Sprintf("%d", p.Identifiers[i])]
		if !ok || seen[ref] {
			continue
		}
		seen[ref] = true
		vars = append(vars, ref)
	}
	return vars
}

// ParseExport decodes an upstream export document.
func ParseExport(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse export JSON: %w", err)
	}
	return &export, nil
}

// LoadExport reads and decodes an upstream export file.
func LoadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	return ParseExport(data)
}
