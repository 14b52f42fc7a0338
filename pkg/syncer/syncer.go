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

// Package syncer keeps a directory of prompt artifacts in step with an
// upstream export: it classifies every prompt as new, changed or
// unchanged, writes what differs, and removes artifacts whose prompt has
// disappeared. After a run the directory is an exact image of the export.
package syncer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"

	"github.com/teradata-labs/promptsync/internal/fsext"
	"github.com/teradata-labs/promptsync/internal/log"
	"github.com/teradata-labs/promptsync/pkg/catalog"
)

// State classifies one prompt within a run. Terminal; a prompt never
// transitions between states once classified.
type State string

const (
	StateNew       State = "new"
	StateChanged   State = "changed"
	StateUnchanged State = "unchanged"
)

// Change is the outcome of synchronizing one prompt.
type Change struct {
	Prompt   catalog.Prompt
	Filename string
	Artifact string
	State    State
}

// Result summarizes a synchronization pass.
type Result struct {
	Changes []Change
	Deleted []string
}

// Count returns the number of changes in the given state.
func (r *Result) Count(state State) int {
	n := 0
	for _, c := range r.Changes {
		if c.State == state {
			n++
		}
	}
	return n
}

// NeedsMeasurement returns the changes whose token count must be measured
// afresh (new and changed prompts).
func (r *Result) NeedsMeasurement() []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.State != StateUnchanged {
			out = append(out, c)
		}
	}
	return out
}

// Summary returns a one-line report of the pass.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d new, %d changed, %d unchanged, %d deleted",
		r.Count(StateNew), r.Count(StateChanged), r.Count(StateUnchanged), len(r.Deleted))
}

// Syncer synchronizes prompt artifacts into a single directory.
// It assumes exclusive access to that directory for the duration of a run.
type Syncer struct {
	dir     string
	verbose bool
	out     io.Writer
}

// New creates a Syncer writing artifacts into dir. Verbose runs print a
// character diff for every changed artifact.
func New(dir string, verbose bool) *Syncer {
	return &Syncer{dir: dir, verbose: verbose, out: os.Stdout}
}

// SetOutput redirects progress reporting (used by tests).
func (s *Syncer) SetOutput(w io.Writer) {
	s.out = w
}

// Run synchronizes the prompt set and returns the classification result.
// Write and delete failures abort the run; there is no rollback of
// already-applied writes.
func (s *Syncer) Run(prompts []catalog.Prompt) (*Result, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	result := &Result{}
	active := make(map[string]bool, len(prompts))

	for _, p := range prompts {
		filename := catalog.FilenameFor(p.Name)
		artifact, err := catalog.RenderArtifact(p)
		if err != nil {
			return nil, fmt.Errorf("failed to render %q: %w", p.Name, err)
		}

		change := Change{Prompt: p, Filename: filename, Artifact: artifact}
		change.State = s.classify(filename, artifact)
		active[filename] = true

		if change.State != StateUnchanged {
			path := filepath.Join(s.dir, filename)
			if err := fsext.WriteFileAtomic(path, []byte(artifact), 0644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", filename, err)
			}
			switch change.State {
			case StateNew:
				fmt.Fprintf(s.out, "New: %s\n", filename)
			case StateChanged:
				fmt.Fprintf(s.out, "Changed: %s\n", filename)
			}
		}

		result.Changes = append(result.Changes, change)
	}

	deleted, err := s.deleteStale(active)
	if err != nil {
		return nil, err
	}
	result.Deleted = deleted

	return result, nil
}

// classify compares the freshly rendered artifact against the persisted
// one. An unreadable or unparseable existing file is treated as absent,
// forcing a rewrite.
func (s *Syncer) classify(filename, artifact string) State {
	path := filepath.Join(s.dir, filename)

	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("unreadable artifact, treating as new",
				zap.String("file", filename), zap.Error(err))
		}
		return StateNew
	}

	if _, _, err := catalog.ParseArtifact(string(existing)); err != nil {
		log.Warn("unparseable artifact, treating as new",
			zap.String("file", filename), zap.Error(err))
		return StateNew
	}

	if catalog.ArtifactsEqual(string(existing), artifact) {
		return StateUnchanged
	}

	if s.verbose {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(existing), artifact, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		fmt.Fprintln(s.out, dmp.DiffPrettyText(diffs))
	}
	return StateChanged
}

// deleteStale removes artifacts with no corresponding prompt in the
// current export.
func (s *Syncer) deleteStale(active map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	var deleted []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") || active[name] {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", name, err)
		}
		fmt.Fprintf(s.out, "Deleted: %s\n", name)
		deleted = append(deleted, name)
	}
	return deleted, nil
}
