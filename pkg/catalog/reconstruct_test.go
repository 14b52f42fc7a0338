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

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name        string
		pieces      []string
		identifiers []int
		identMap    map[string]string
		want        string
	}{
		{
			name:   "empty pieces",
			pieces: nil,
			want:   "",
		},
		{
			name:        "single piece is verbatim",
			pieces:      []string{"only"},
			identifiers: []int{1, 2, 3},
			identMap:    map[string]string{"1": "ignored"},
			want:        "only",
		},
		{
			name:        "single boundary interpolation",
			pieces:      []string{"a", "b"},
			identifiers: []int{7},
			identMap:    map[string]string{"7": "${X}"},
			want:        "a${X}b",
		},
		{
			name:        "missing mapping drops the boundary",
			pieces:      []string{"a", "b"},
			identifiers: []int{7},
			identMap:    map[string]string{},
			want:        "ab",
		},
		{
			name:        "multiple boundaries",
			pieces:      []string{"Run ", " in ", " now"},
			identifiers: []int{3, 9},
			identMap:    map[string]string{"3": "${CMD}", "9": "${DIR}"},
			want:        "Run ${CMD} in ${DIR} now",
		},
		{
			name:        "short identifier list",
			pieces:      []string{"a", "b", "c"},
			identifiers: []int{1},
			identMap:    map[string]string{"1": "X"},
			want:        "aXbc",
		},
		{
			name:        "repeated identifier",
			pieces:      []string{"x", "y", "z"},
			identifiers: []int{4, 4},
			identMap:    map[string]string{"4": "${V}"},
			want:        "x${V}y${V}z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconstruct(tt.pieces, tt.identifiers, tt.identMap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptVariables(t *testing.T) {
	p := Prompt{
		Pieces:        []string{"a", "b", "c", "d"},
		Identifiers:   []int{1, 2, 1},
		IdentifierMap: map[string]string{"1": "${FOO}", "2": "${BAR}"},
	}
	assert.Equal(t, []string{"${FOO}", "${BAR}"}, p.Variables())

	single := Prompt{Pieces: []string{"only"}}
	assert.Nil(t, single.Variables())
}
