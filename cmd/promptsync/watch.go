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
package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teradata-labs/promptsync/internal/log"
	"github.com/teradata-labs/promptsync/pkg/tokens"
)

// debounceDelay coalesces editor save bursts into one re-sync.
const debounceDelay = 200 * time.Millisecond

// watchAndSync runs the pipeline once, then re-runs it whenever the
// export file is rewritten. The directory is watched rather than the
// file itself because most editors replace files on save.
func watchAndSync(ctx context.Context, cfg *Config, counter tokens.Counter, exportPath string) error {
	if err := syncOnce(ctx, cfg, counter, exportPath); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(exportPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(exportPath), err)
	}

	target := filepath.Clean(exportPath)
	log.Info("watching export for changes", zap.String("path", target))

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			if err := syncOnce(ctx, cfg, counter, exportPath); err != nil {
				// Keep watching; the next save may fix the export.
				log.Error("sync failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
