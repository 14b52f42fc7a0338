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
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teradata-labs/promptsync/internal/log"
	"github.com/teradata-labs/promptsync/pkg/catalog"
	"github.com/teradata-labs/promptsync/pkg/registry"
	"github.com/teradata-labs/promptsync/pkg/render"
	"github.com/teradata-labs/promptsync/pkg/syncer"
	"github.com/teradata-labs/promptsync/pkg/tokens"
)

// run resolves the counter up front (a missing credential must fail
// before any work begins), then executes the pipeline once or under the
// watcher.
func run(ctx context.Context, cfg *Config, exportPath string) error {
	counter, err := newCounter(cfg)
	if err != nil {
		return err
	}

	if cfg.Sync.Watch {
		return watchAndSync(ctx, cfg, counter, exportPath)
	}
	return syncOnce(ctx, cfg, counter, exportPath)
}

// newCounter picks the measurement backend.
func newCounter(cfg *Config) (tokens.Counter, error) {
	if cfg.LLM.Offline {
		return tokens.NewLocalEstimator(), nil
	}

	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return nil, err
	}
	return tokens.NewAnthropicCounter(tokens.AnthropicConfig{
		APIKey: apiKey,
		Model:  cfg.LLM.Model,
	}), nil
}

// syncOnce executes the full pipeline: reconstruct, synchronize, measure,
// categorize, render.
func syncOnce(ctx context.Context, cfg *Config, counter tokens.Counter, exportPath string) error {
	runLog := log.With(zap.String("run_id", uuid.NewString()))

	export, err := catalog.LoadExport(exportPath)
	if err != nil {
		return err
	}
	runLog.Info("export loaded",
		zap.String("version", export.Version),
		zap.Int("prompts", len(export.Prompts)))

	promptsDir := filepath.Join(cfg.Sync.Dir, promptsDirName)
	indexPath := filepath.Join(cfg.Sync.Dir, indexFileName)

	// Prior counts must be read before the index is rewritten.
	priorCounts := map[string]int{}
	if data, err := os.ReadFile(indexPath); err == nil {
		priorCounts = tokens.PriorCounts(string(data))
	}

	result, err := syncer.New(promptsDir, cfg.Sync.Verbose).Run(export.Prompts)
	if err != nil {
		return err
	}

	var jobs []tokens.Job
	for _, c := range result.NeedsMeasurement() {
		jobs = append(jobs, tokens.Job{Filename: c.Filename, Body: c.Prompt.Body()})
	}
	measured := tokens.NewAccountant(counter, cfg.Sync.BatchSize, cfg.Sync.BatchDelay).
		Measure(ctx, jobs)
	runLog.Info("token counts measured", zap.Int("measured", len(measured)))

	entries := make([]render.Entry, 0, len(result.Changes))
	for _, c := range result.Changes {
		count, ok := measured[c.Filename]
		if !ok {
			count = priorCounts[c.Filename] // unchanged: carry forward, default 0
		}
		category, subcategory := catalog.Categorize(c.Prompt.Name)
		entries = append(entries, render.Entry{
			Name:        c.Prompt.Name,
			Description: c.Prompt.Description,
			Filename:    c.Filename,
			Tokens:      count,
			Category:    category,
			Subcategory: subcategory,
		})
	}

	releaseDate := ""
	client := registry.NewClient(registry.Config{Endpoint: cfg.Registry.Endpoint})
	if date, err := client.ReleaseDate(ctx, cfg.Registry.Package, export.Version); err != nil {
		runLog.Warn("release date lookup failed, omitting date", zap.Error(err))
	} else {
		releaseDate = date
	}

	info := render.RunInfo{
		Package:         cfg.Registry.Package,
		Version:         export.Version,
		ReleaseDate:     releaseDate,
		HistoricalCount: registry.CountHistoricalVersions(filepath.Join(cfg.Sync.Dir, historicalDirName)),
	}
	if err := render.NewRenderer(indexPath, promptsDirName).Write(entries, info); err != nil {
		return err
	}

	fmt.Printf("Sync complete: %s\n", result.Summary())
	return nil
}
