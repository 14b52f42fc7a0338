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

// Package tokens measures the token cost of prompt bodies.
//
// Fresh measurements go through a Counter (the Anthropic count-tokens API,
// or a local tiktoken estimator when offline) in fixed-size concurrent
// batches with a fixed delay between batches. Counts for unchanged prompts
// are recovered from the previously rendered index document instead of
// being re-measured.
package tokens

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/teradata-labs/promptsync/internal/log"
)

// Counter measures the token cost of a single text body.
type Counter interface {
	Count(ctx context.Context, text string) (int, error)
}

const (
	// DefaultBatchSize is the number of measurements issued concurrently.
	DefaultBatchSize = 5
	// DefaultBatchDelay is the pause between batches. Simple rate
	// limiting against the API quota, not a backoff scheme.
	DefaultBatchDelay = 100 * time.Millisecond
)

// Job is one measurement request, keyed by artifact filename.
type Job struct {
	Filename string
	Body     string
}

// Accountant measures token counts in rate-limited batches.
type Accountant struct {
	counter    Counter
	batchSize  int
	batchDelay time.Duration
}

// NewAccountant creates an Accountant. Non-positive batchSize or
// batchDelay fall back to the defaults.
func NewAccountant(counter Counter, batchSize int, batchDelay time.Duration) *Accountant {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchDelay <= 0 {
		batchDelay = DefaultBatchDelay
	}
	return &Accountant{counter: counter, batchSize: batchSize, batchDelay: batchDelay}
}

// Measure obtains a token count for every job. A failed measurement is
// logged and recorded as 0; it never aborts the batch or the run. The
// result map is only written between batches, after each batch has fully
// completed.
func (a *Accountant) Measure(ctx context.Context, jobs []Job) map[string]int {
	counts := make(map[string]int, len(jobs))

	for start := 0; start < len(jobs); start += a.batchSize {
		if start > 0 {
			select {
			case <-time.After(a.batchDelay):
			case <-ctx.Done():
				return counts
			}
		}

		end := min(start+a.batchSize, len(jobs))
		batch := jobs[start:end]
		results := make([]int, len(batch))

		var wg sync.WaitGroup
		for i, job := range batch {
			wg.Add(1)
			go func(i int, job Job) {
				defer wg.Done()
				n, err := a.counter.Count(ctx, job.Body)
				if err != nil {
					log.Warn("token measurement failed, recording 0",
						zap.String("file", job.Filename), zap.Error(err))
					n = 0
				}
				if n < 0 {
					n = 0
				}
				results[i] = n
			}(i, job)
		}
		wg.Wait()

		for i, job := range batch {
			counts[job.Filename] = results[i]
		}
	}

	return counts
}
