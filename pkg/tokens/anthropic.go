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
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel is the model used for token counting.
const DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicConfig holds configuration for the Anthropic counter.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: claude-sonnet-4-5-20250929
}

// AnthropicCounter measures token counts via the Anthropic count-tokens
// endpoint. The prompt body is submitted as a single user message.
type AnthropicCounter struct {
	client anthropic.Client
	model  string
}

// NewAnthropicCounter creates an Anthropic-backed counter.
func NewAnthropicCounter(cfg AnthropicConfig) *AnthropicCounter {
	if cfg.Model == "" {
		cfg.Model = DefaultAnthropicModel
	}
	return &AnthropicCounter{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
	}
}

// Count returns the input token count for text.
func (c *AnthropicCounter) Count(ctx context.Context, text string) (int, error) {
	res, err := c.client.Messages.CountTokens(ctx, anthropic.MessageCountTokensParams{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("count_tokens request failed: %w", err)
	}
	return int(res.InputTokens), nil
}

var _ Counter = (*AnthropicCounter)(nil)
