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

// Package render regenerates the index document.
//
// Everything before the sentinel heading is hand-authored and copied
// verbatim from the prior document; everything from the sentinel on is
// machine-generated on every run.
package render

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/teradata-labs/promptsync/internal/fsext"
	"github.com/teradata-labs/promptsync/pkg/catalog"
	"github.com/teradata-labs/promptsync/pkg/registry"
)

const (
	// SentinelHeading marks the boundary between the hand-authored
	// preface and the regenerated content.
	SentinelHeading = "## Prompts"

	// EmphasizedPrompt is rendered with bold link text.
	EmphasizedPrompt = "System Prompt: Claude Code"

	// remindersNote is emitted under the System Reminders heading.
	remindersNote = "> [!NOTE]\n" +
		"> System reminders are injected into the conversation as `<system-reminder>` blocks\n" +
		"> when session state changes; they are not part of the system prompt itself.\n"
)

// Entry is one prompt ready for index rendering.
type Entry struct {
	Name        string
	Description string
	Filename    string
	Tokens      int
	Category    string
	Subcategory string
}

// RunInfo carries the metadata rendered into the dynamic header line.
type RunInfo struct {
	Package         string
	Version         string
	ReleaseDate     string // "" when the registry lookup failed
	HistoricalCount int
}

// Renderer assembles and writes the index document.
type Renderer struct {
	indexPath  string
	promptsDir string // link-relative directory, e.g. "system-prompts"
}

// NewRenderer creates a Renderer writing to indexPath. promptsDir is the
// directory name used in entry links, relative to the index document.
func NewRenderer(indexPath, promptsDir string) *Renderer {
	return &Renderer{indexPath: indexPath, promptsDir: promptsDir}
}

// Write regenerates the index document in a single pass, preserving the
// prior document's preface and replacing the file atomically.
func (r *Renderer) Write(entries []Entry, info RunInfo) error {
	preface := defaultPreface(info)
	if prior, err := os.ReadFile(r.indexPath); err == nil {
		preface = splitPreface(string(prior))
	}

	document := preface + r.Render(entries, info)
	if err := fsext.WriteFileAtomic(r.indexPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// Render assembles the generated region: sentinel heading, header line,
// and every category/subcategory section in the fixed layout.
func (r *Renderer) Render(entries []Entry, info RunInfo) string {
	var b strings.Builder
	b.WriteString(SentinelHeading + "\n\n")
	b.WriteString(headerLine(info) + "\n")

	agent := r.groupLines(entries, catalog.CategoryAgentPrompts)
	writeSection(&b, "### "+catalog.CategoryAgentPrompts, nil, nil)
	for _, sub := range []string{
		catalog.SubcategorySubAgents,
		catalog.SubcategoryCreationAssistants,
		catalog.SubcategorySlashCommands,
		catalog.SubcategoryUtilities,
	} {
		writeSection(&b, "#### "+sub, agent[sub], nil)
	}

	if data := r.groupLines(entries, catalog.CategoryData); len(data[""]) > 0 {
		b.WriteString("\n<!--\n### " + catalog.CategoryData + "\n\n")
		for _, line := range data[""] {
			b.WriteString(line + "\n")
		}
		b.WriteString("-->\n")
	}

	system := r.groupLines(entries, catalog.CategorySystemPrompt)
	writeSection(&b, "### "+catalog.CategorySystemPrompt, system[""], nil)

	reminders := r.groupLines(entries, catalog.CategorySystemReminders)
	writeSection(&b, "### "+catalog.CategorySystemReminders, reminders[""], []string{remindersNote})

	tools := r.groupLines(entries, catalog.CategoryToolDescriptions)
	writeSection(&b, "### "+catalog.CategoryToolDescriptions, tools[""], nil)
	writeSection(&b, "#### "+catalog.SubcategoryAdditionalNotes, tools[catalog.SubcategoryAdditionalNotes], nil)

	return b.String()
}

// groupLines renders and sorts the entry lines of one category, keyed by
// subcategory. Sorting is lexicographic on the full rendered line,
// markup included.
func (r *Renderer) groupLines(entries []Entry, category string) map[string][]string {
	groups := make(map[string][]string)
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		groups[e.Subcategory] = append(groups[e.Subcategory], r.entryLine(e))
	}
	for _, lines := range groups {
		sort.Strings(lines)
	}
	return groups
}

var embeddedNewlines = regexp.MustCompile(`[ \t]*\r?\n[ \t]*`)

// entryLine renders one index bullet:
//
//	- [Name](./system-prompts/file.md) (**123** tks) - description.
func (r *Renderer) entryLine(e Entry) string {
	text := e.Name
	if text == EmphasizedPrompt {
		text = "**" + text + "**"
	}

	desc := strings.TrimSpace(embeddedNewlines.ReplaceAllString(e.Description, " "))
	if desc != "" && !strings.HasSuffix(desc, ".") && !strings.HasSuffix(desc, "!") && !strings.HasSuffix(desc, "?") {
		desc += "."
	}

	link := "./" + path.Join(r.promptsDir, e.Filename)
	return fmt.Sprintf("- [%s](%s) (**%d** tks) - %s", text, link, e.Tokens, desc)
}

// writeSection emits a heading, optional note lines, and sorted entries.
// Top-level sections are part of the fixed layout and always emitted;
// subsections are skipped when empty.
func writeSection(b *strings.Builder, heading string, lines []string, notes []string) {
	if strings.HasPrefix(heading, "####") && len(lines) == 0 {
		return
	}

	b.WriteString("\n" + heading + "\n\n")
	for _, note := range notes {
		b.WriteString(note + "\n")
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
}

// headerLine builds the dynamic header under the sentinel heading. The
// release clause is omitted when the date is unavailable, the archive
// clause when nothing is archived.
func headerLine(info RunInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extracted from [%s v%s](%s)",
		info.Package, info.Version, registry.VersionURL(info.Package, info.Version))
	if info.ReleaseDate != "" {
		fmt.Fprintf(&b, ", released %s", info.ReleaseDate)
	}
	b.WriteString(".")
	if info.HistoricalCount > 0 {
		fmt.Fprintf(&b, " %d earlier versions are archived in [historical-versions/](./historical-versions/).",
			info.HistoricalCount)
	}
	return b.String()
}

// splitPreface returns everything before the sentinel heading, verbatim.
// A document without the sentinel is treated as all preface.
func splitPreface(prior string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(prior, "\n") {
		if strings.TrimRight(line, "\r\n") == SentinelHeading {
			return b.String()
		}
		b.WriteString(line)
	}
	out := b.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if out != "" && !strings.HasSuffix(out, "\n\n") {
		out += "\n"
	}
	return out
}

// defaultPreface seeds the index on a first run, before anyone has
// written an introduction by hand.
func defaultPreface(info RunInfo) string {
	return fmt.Sprintf("# %s prompts\n\nOne markdown file per extracted prompt, regenerated on every sync.\n\n",
		info.Package)
}
