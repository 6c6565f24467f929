// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybrota/keytree/avl"
)

func TestRenderTreeStructureEmpty(t *testing.T) {
	tree := avl.New(strings.Compare)
	assert.Equal(t, "(empty set)\n", renderTreeStructure(tree))
}

func TestRenderTreeStructure(t *testing.T) {
	tree := avl.New(strings.Compare)
	for _, key := range []string{"banana", "apple", "cherry"} {
		tree = tree.Insert(key)
	}

	out := renderTreeStructure(tree)
	// Root line carries the tree-wide stats; children are labeled by side.
	assert.Contains(t, out, "banana  (height=2 size=3)")
	assert.Contains(t, out, "L apple  (height=1 size=1)")
	assert.Contains(t, out, "R cherry  (height=1 size=1)")
}

func TestHelpMessageMentionsVersion(t *testing.T) {
	assert.Contains(t, getHelpMessage(), version)
}
