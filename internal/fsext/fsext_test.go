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
package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.md")

	require.NoError(t, WriteFileAtomic(path, []byte("first\n"), 0644))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))

	// Overwrite replaces the whole file, not appends.
	require.NoError(t, WriteFileAtomic(path, []byte("second\n"), 0644))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "no-such-dir", "f.md"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestToUnixLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\n", ToUnixLineEndings("a\r\nb\r\n"))
	assert.Equal(t, "plain", ToUnixLineEndings("plain"))
}
