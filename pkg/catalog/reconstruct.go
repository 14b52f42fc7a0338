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
	"strconv"
	"strings"
)

// Reconstruct rebuilds a prompt body from its piece/identifier encoding.
//
// Pieces are emitted in order; between pieces[i] and pieces[i+1] the
// variable reference identifierMap[identifiers[i]] is inserted. A boundary
// whose identifier has no mapping is skipped without inserting anything.
//
// Example:
//
//	Reconstruct([]string{"Run ", " now"}, []int{7}, map[string]string{"7": "${CMD}"})
//	// Returns: "Run ${CMD} now"
//
// Never fails; malformed input produces a best-effort string.
func Reconstruct(pieces []string, identifiers []int, identifierMap map[string]string) string {
	if len(pieces) == 0 {
		return ""
	}
	if len(pieces) == 1 {
		return pieces[0]
	}

	var b strings.Builder
	b.WriteString(pieces[0])
	for i := 1; i < len(pieces); i++ {
		if i-1 < len(identifiers) {
			if ref, ok := identifierMap[strconv.Itoa(identifiers[i-1])]; ok {
				b.WriteString(ref)
			}
		}
		b.WriteString(pieces[i])
	}
	return b.String()
}
