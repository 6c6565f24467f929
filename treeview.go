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
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/cybrota/keytree/avl"
)

// renderTreeStructure draws the node structure of one tree version as an
// ASCII tree, annotating each position with its height and subtree size.
func renderTreeStructure(tree avl.Tree[string]) string {
	if tree.IsEmpty() {
		return "(empty set)\n"
	}
	printed := treeprint.NewWithRoot(describeNode(tree.Root()))
	addChildBranches(printed, tree.Root())
	return printed.String()
}

func describeNode(n *avl.Node[string]) string {
	return fmt.Sprintf("%s  (height=%d size=%d)", n.Key(), n.Height(), n.Size())
}

func addChildBranches(branch treeprint.Tree, n *avl.Node[string]) {
	if n.Left() != nil {
		left := branch.AddBranch("L " + describeNode(n.Left()))
		addChildBranches(left, n.Left())
	}
	if n.Right() != nil {
		right := branch.AddBranch("R " + describeNode(n.Right()))
		addChildBranches(right, n.Right())
	}
}
