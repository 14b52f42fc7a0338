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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantCat string
		wantSub string
	}{
		{
			name:    "sub-agent by exact prefix",
			input:   "Agent Prompt: Explore",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategorySubAgents,
		},
		{
			name:    "sub-agent prefix with suffix",
			input:   "Agent Prompt: Plan (extended)",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategorySubAgents,
		},
		{
			name:    "creation assistant by substring",
			input:   "Agent Prompt: Output style creator",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategoryCreationAssistants,
		},
		{
			name:    "slash command by phrase",
			input:   "Agent Prompt: Slash command interpreter",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategorySlashCommands,
		},
		{
			name:    "slash command by leading slash",
			input:   "Agent Prompt: /compact",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategorySlashCommands,
		},
		{
			name:    "agent fallback is utilities",
			input:   "Agent Prompt: Commit message drafting",
			wantCat: CategoryAgentPrompts,
			wantSub: SubcategoryUtilities,
		},
		{
			name:    "system prompt has no subcategory",
			input:   "System Prompt: Claude Code",
			wantCat: CategorySystemPrompt,
			wantSub: "",
		},
		{
			name:    "system reminder",
			input:   "System Reminder: Plan mode active",
			wantCat: CategorySystemReminders,
			wantSub: "",
		},
		{
			name:    "tool description main",
			input:   "Tool Description: Bash",
			wantCat: CategoryToolDescriptions,
			wantSub: "",
		},
		{
			name:    "tool description additional note",
			input:   "Tool Description: Bash (sandbox note)",
			wantCat: CategoryToolDescriptions,
			wantSub: SubcategoryAdditionalNotes,
		},
		{
			name:    "data",
			input:   "Data: Model pricing",
			wantCat: CategoryData,
			wantSub: "",
		},
		{
			name:    "unrecognized name",
			input:   "Changelog",
			wantCat: CategoryOther,
			wantSub: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, sub := Categorize(tt.input)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

// Rule order matters: a sub-agent whose name also mentions creation must
// classify as a sub-agent.
func TestCategorizeRuleOrder(t *testing.T) {
	cat, sub := Categorize("Agent Prompt: Explore creator")
	assert.Equal(t, CategoryAgentPrompts, cat)
	assert.Equal(t, SubcategorySubAgents, sub)
}
