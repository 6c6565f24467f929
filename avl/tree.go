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

package avl

// Tree is a handle on one version of the set: a root node (nil for the
// empty tree) plus the comparison the tree was built with. Tree is a small
// value; Insert and Delete return a new Tree and leave the receiver's
// version fully intact, so holding on to an old Tree is how snapshots work.
type Tree[K any] struct {
	root *Node[K]
	cmp  CompareFunc[K]
}

// New returns an empty tree ordered by cmp.
func New[K any](cmp CompareFunc[K]) Tree[K] {
	return Tree[K]{cmp: cmp}
}

// Insert returns a version of the tree containing key.
func (t Tree[K]) Insert(key K) Tree[K] {
	if t.root == nil {
		return Tree[K]{root: newLeaf(key), cmp: t.cmp}
	}
	return Tree[K]{root: t.root.Insert(key, t.cmp), cmp: t.cmp}
}

// Delete returns a version of the tree without key. Deleting a key that
// is not present hands back the same version.
func (t Tree[K]) Delete(key K) Tree[K] {
	if t.root == nil {
		return t
	}
	return Tree[K]{root: t.root.Delete(key, t.cmp), cmp: t.cmp}
}

// Contains reports whether key is in this version of the set.
func (t Tree[K]) Contains(key K) bool {
	return t.root.Contains(key, t.cmp)
}

// Range returns every key k with start <= k <= end, ascending.
func (t Tree[K]) Range(start, end K) []K {
	if t.root == nil {
		return nil
	}
	return t.root.Range(start, end, t.cmp)
}

// Keys returns every key in ascending order.
func (t Tree[K]) Keys() []K {
	if t.root == nil {
		return nil
	}
	return t.root.InOrder()
}

// Size reports how many keys this version holds.
func (t Tree[K]) Size() int {
	return t.root.Size()
}

// Height reports the height of this version; 0 for the empty tree.
func (t Tree[K]) Height() int {
	return t.root.Height()
}

// IsEmpty reports whether this version holds no keys.
func (t Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Root exposes the underlying root node for read-only walks, such as
// structure rendering. It is nil for the empty tree.
func (t Tree[K]) Root() *Node[K] {
	return t.root
}
