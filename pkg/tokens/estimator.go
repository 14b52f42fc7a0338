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
package tokens

import (
	"context"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/teradata-labs/promptsync/internal/log"
)

// LocalEstimator approximates token counts offline using tiktoken with
// cl100k_base encoding (a Claude-compatible approximation). If the
// encoder cannot be initialized it falls back to char-based estimation.
type LocalEstimator struct {
	encoder *tiktoken.Tiktoken
	mu      sync.Mutex
}

// NewLocalEstimator creates a local estimator.
func NewLocalEstimator() *LocalEstimator {
	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Warn("tiktoken unavailable, falling back to char-based estimation")
		return &LocalEstimator{}
	}
	return &LocalEstimator{encoder: encoder}
}

// Count returns the estimated token count for text. Never fails.
func (e *LocalEstimator) Count(_ context.Context, text string) (int, error) {
	if e.encoder == nil {
		return len(text) / 4, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.encoder.Encode(text, nil, nil)), nil
}

var _ Counter = (*LocalEstimator)(nil)
