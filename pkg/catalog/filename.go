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
	"regexp"
	"strings"
)

// filenamePrefix maps a recognized name prefix to a filename prefix.
// Evaluated in order; first match wins.
type filenamePrefix struct {
	Name string
	File string
}

var filenamePrefixes = []filenamePrefix{
	{"Agent Prompt: ", "agent-prompt-"},
	{"System Prompt: ", "system-prompt-"},
	{"System Reminder: ", "system-reminder-"},
	{"Tool Description: ", "tool-description-"},
	{"Data: ", "data-"},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// FilenameFor derives the deterministic artifact filename for a prompt
// name, e.g. "Agent Prompt: Explore" -> "agent-prompt-explore.md".
//
// Not injective: two distinct names can slugify to the same filename, in
// which case the later write silently overwrites the earlier one.
func FilenameFor(name string) string {
	prefix := ""
	rest := name
	for _, p := range filenamePrefixes {
		if strings.HasPrefix(name, p.Name) {
			prefix = p.File
			rest = strings.TrimPrefix(name, p.Name)
			break
		}
	}
	return prefix + slugify(rest) + ".md"
}

// slugify normalizes a name remainder into a filesystem-safe slug:
// lowercase, whitespace runs collapsed to hyphens, characters outside
// [a-z0-9_-] dropped, hyphen runs collapsed, edge hyphens trimmed.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(hyphenRun.ReplaceAllString(b.String(), "-"), "-")
}
