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
package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ArtifactMeta is the frontmatter of a persisted prompt artifact.
type ArtifactMeta struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	CCVersion   string   `yaml:"ccVersion"`
	Variables   []string `yaml:"variables,omitempty"`
}

// RenderArtifact serializes a prompt into its persisted form: YAML
// frontmatter between --- fences, a blank line, then the reconstructed
// body. The result is always newline-terminated.
func RenderArtifact(p Prompt) (string, error) {
	meta := ArtifactMeta{
		Name:        p.Name,
		Description: p.Description,
		CCVersion:   p.Version,
		Variables:   p.Variables(),
	}

	fm, err := yaml.Marshal(&meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata for %q: %w", p.Name, err)
	}

	body := p.Body()
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	return "---\n" + string(fm) + "---\n\n" + body, nil
}

// ParseArtifact splits a persisted artifact back into metadata and body.
func ParseArtifact(content string) (*ArtifactMeta, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, "---\n") {
		return nil, "", fmt.Errorf("artifact missing frontmatter fence")
	}
	rest := strings.TrimPrefix(content, "---\n")

	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, "", fmt.Errorf("artifact missing closing frontmatter fence")
	}

	var meta ArtifactMeta
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &meta); err != nil {
		return nil, "", fmt.Errorf("failed to parse artifact metadata: %w", err)
	}

	body := rest[end+len("\n---\n"):]
	body = strings.TrimPrefix(body, "\n")
	return &meta, body, nil
}

// ArtifactsEqual reports whether two artifacts carry the same content
// under whitespace-trimmed full-text comparison.
func ArtifactsEqual(a, b string) bool {
	return strings.TrimSpace(strings.ReplaceAll(a, "\r\n", "\n")) ==
		strings.TrimSpace(strings.ReplaceAll(b, "\r\n", "\n"))
}
