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
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter counts by word and tracks concurrency.
type fakeCounter struct {
	mu            sync.Mutex
	calls         int
	inFlight      int
	maxInFlight   int
	failSubstring string
}

func (f *fakeCounter) Count(_ context.Context, text string) (int, error) {
	f.mu.Lock()
	f.calls++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if f.failSubstring != "" && strings.Contains(text, f.failSubstring) {
		return 0, errors.New("quota exceeded")
	}
	return len(strings.Fields(text)), nil
}

func TestMeasure(t *testing.T) {
	counter := &fakeCounter{}
	acct := NewAccountant(counter, 3, time.Millisecond)

	jobs := []Job{
		{Filename: "a.md", Body: "one"},
		{Filename: "b.md", Body: "one two"},
		{Filename: "c.md", Body: "one two three"},
		{Filename: "d.md", Body: "one two three four"},
	}

	counts := acct.Measure(context.Background(), jobs)
	require.Len(t, counts, 4)
	assert.Equal(t, 1, counts["a.md"])
	assert.Equal(t, 2, counts["b.md"])
	assert.Equal(t, 3, counts["c.md"])
	assert.Equal(t, 4, counts["d.md"])
	assert.Equal(t, 4, counter.calls)
	assert.LessOrEqual(t, counter.maxInFlight, 3)
}

func TestMeasureFailureRecordsZero(t *testing.T) {
	counter := &fakeCounter{failSubstring: "poison"}
	acct := NewAccountant(counter, 2, time.Millisecond)

	counts := acct.Measure(context.Background(), []Job{
		{Filename: "ok.md", Body: "fine body"},
		{Filename: "bad.md", Body: "poison body"},
	})
	assert.Equal(t, 2, counts["ok.md"])
	assert.Equal(t, 0, counts["bad.md"])
}

func TestMeasureEmpty(t *testing.T) {
	acct := NewAccountant(&fakeCounter{}, 0, 0)
	counts := acct.Measure(context.Background(), nil)
	assert.Empty(t, counts)
}

func TestMeasureCancelledContext(t *testing.T) {
	counter := &fakeCounter{}
	acct := NewAccountant(counter, 1, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// First batch runs, the inter-batch wait honors cancellation.
	counts := acct.Measure(ctx, []Job{
		{Filename: "a.md", Body: "one"},
		{Filename: "b.md", Body: "one two"},
	})
	assert.Equal(t, 1, counter.calls)
	assert.Len(t, counts, 1)
}

func TestLocalEstimatorFallback(t *testing.T) {
	// Zero-value estimator exercises the char-based fallback.
	est := &LocalEstimator{}
	n, err := est.Count(context.Background(), strings.Repeat("abcd", 10))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestPriorCounts(t *testing.T) {
	document := `# Prompts index

Hand-written preface (with parens) stays untouched.

## Prompts

### Agent Prompts

- [Agent Prompt: Explore](./system-prompts/agent-prompt-explore.md) (**321** tks) - Explores the repo.
- [Tool Description: Bash (sandbox note)](./system-prompts/tool-description-bash-sandbox-note.md) (**45** tks) - Sandbox details.

### System Prompt

- [**System Prompt: Claude Code**](./system-prompts/system-prompt-claude-code.md) (**10230** tks) - The main prompt.
`

	counts := PriorCounts(document)
	assert.Equal(t, map[string]int{
		"agent-prompt-explore.md":               321,
		"tool-description-bash-sandbox-note.md": 45,
		"system-prompt-claude-code.md":          10230,
	}, counts)
}

func TestPriorCountsEmpty(t *testing.T) {
	assert.Empty(t, PriorCounts(""))
	assert.Empty(t, PriorCounts("no entries here"))
}
