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
	"path"
	"regexp"
	"strconv"
)

// entryCountPattern matches the "(relative/path.md) (**N** tks)" fragment
// of a rendered index entry line.
var entryCountPattern = regexp.MustCompile(`\(([^()]+\.md)\) \(\*\*(\d+)\*\* tks\)`)

// PriorCounts recovers published token counts from a previously rendered
// index document, keyed by artifact base filename. Association is by
// filename, never by line position, so reordered sections do not lose
// counts. An empty or missing document yields an empty map.
func PriorCounts(document string) map[string]int {
	counts := make(map[string]int)
	for _, m := range entryCountPattern.FindAllStringSubmatch(document, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		counts[path.Base(m[1])] = n
	}
	return counts
}
