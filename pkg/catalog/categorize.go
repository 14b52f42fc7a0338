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

import "strings"

// Categories and subcategories as they appear in the index document.
const (
	CategoryAgentPrompts     = "Agent Prompts"
	CategorySystemPrompt     = "System Prompt"
	CategorySystemReminders  = "System Reminders"
	CategoryToolDescriptions = "Builtin Tool Descriptions"
	CategoryData             = "Data"
	CategoryOther            = "Other"

	SubcategorySubAgents          = "Sub-agents"
	SubcategoryCreationAssistants = "Creation Assistants"
	SubcategorySlashCommands      = "Slash commands"
	SubcategoryUtilities          = "Utilities"
	SubcategoryAdditionalNotes    = "Additional notes"
)

// categoryRule is one row of the ordered classification table.
// First matching prefix wins.
type categoryRule struct {
	Prefix      string
	Category    string
	Subcategory func(name string) string
}

var categoryRules = []categoryRule{
	{"Agent Prompt: ", CategoryAgentPrompts, agentSubcategory},
	{"System Prompt: ", CategorySystemPrompt, nil},
	{"System Reminder: ", CategorySystemReminders, nil},
	{"Tool Description: ", CategoryToolDescriptions, toolSubcategory},
	{"Data: ", CategoryData, nil},
}

// subAgentPrefixes lists agent prompts that run as dedicated sub-agents.
// Exact-prefix matches against the full prompt name.
var subAgentPrefixes = []string{
	"Agent Prompt: Explore",
	"Agent Prompt: Plan",
	"Agent Prompt: General-purpose",
	"Agent Prompt: Output style setup",
	"Agent Prompt: Status line setup",
}

// creationAssistantMarkers are substrings identifying assistants that help
// the user author new agents, commands or styles.
var creationAssistantMarkers = []string{
	"creator",
	"creation assistant",
}

// Categorize maps a prompt name to its (category, subcategory) pair for
// index placement. Subcategory is "" where a category has no subsections.
// Pure; recomputed every run and never persisted.
func Categorize(name string) (category, subcategory string) {
	for _, rule := range categoryRules {
		if !strings.HasPrefix(name, rule.Prefix) {
			continue
		}
		if rule.Subcategory != nil {
			return rule.Category, rule.Subcategory(name)
		}
		return rule.Category, ""
	}
	return CategoryOther, ""
}

func agentSubcategory(name string) string {
	for _, prefix := range subAgentPrefixes {
		if strings.HasPrefix(name, prefix) {
			return SubcategorySubAgents
		}
	}

	lower := strings.ToLower(name)
	for _, marker := range creationAssistantMarkers {
		if strings.Contains(lower, marker) {
			return SubcategoryCreationAssistants
		}
	}

	rest := strings.TrimPrefix(name, "Agent Prompt: ")
	if strings.Contains(lower, "slash command") || strings.HasPrefix(rest, "/") {
		return SubcategorySlashCommands
	}

	return SubcategoryUtilities
}

// toolSubcategory flags parenthesized tool names as supplementary notes.
// A bare "(" + ")" check is a known false-positive risk, kept for
// compatibility with the published index.
func toolSubcategory(name string) string {
	if strings.Contains(name, "(") && strings.Contains(name, ")") {
		return SubcategoryAdditionalNotes
	}
	return ""
}
