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

// Package avl implements a persistent, self-balancing binary search tree
// over a set of unique keys. Nodes are immutable once constructed: every
// insert or delete copies only the nodes on the path to the affected key
// and shares the rest, so any previously obtained root keeps describing
// the exact tree it described when it was returned.
package avl

// CompareFunc is the total order injected into every operation. It returns
// a negative number when a orders before b, zero when they are equal, and
// a positive number when a orders after b. Keys carry no intrinsic order;
// a tree is only as correct as the comparison it is given.
type CompareFunc[K any] func(a, b K) int

// Node is a single position in the tree. A nil *Node is the empty tree.
// Height and size are fixed at construction and always describe the
// current children, so queries never recompute them.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int
	size   int
}

// newLeaf builds a childless node.
func newLeaf[K any](key K) *Node[K] {
	return &Node[K]{key: key, height: 1, size: 1}
}

// newNode builds an internal node from existing children, deriving height
// and size from whatever children are actually passed in. Every shape
// change in the tree goes through here.
func newNode[K any](key K, left, right *Node[K]) *Node[K] {
	leftHeight, rightHeight := left.Height(), right.Height()
	height := leftHeight + 1
	if rightHeight > leftHeight {
		height = rightHeight + 1
	}
	return &Node[K]{
		key:    key,
		left:   left,
		right:  right,
		height: height,
		size:   1 + left.Size() + right.Size(),
	}
}

// Key returns the key stored at this node.
func (n *Node[K]) Key() K { return n.key }

// Left returns the left child, nil when absent.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, nil when absent.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Height reports the height of the subtree rooted here; an absent subtree
// has height 0 and a leaf has height 1.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size reports how many keys the subtree rooted here holds.
func (n *Node[K]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// balanceFactor describes the relative height of the two subtrees:
// positive when the right side is taller, negative when the left side is.
func (n *Node[K]) balanceFactor() int {
	return n.right.Height() - n.left.Height()
}

// Insert returns the root of a new subtree that contains key. The receiver
// and everything reachable from it are left untouched. Inserting a key
// already present replaces the stored key while keeping both children, so
// the size never changes on a duplicate.
func (n *Node[K]) Insert(key K, cmp CompareFunc[K]) *Node[K] {
	var root *Node[K]
	comparison := cmp(key, n.key)
	if comparison < 0 {
		if n.left != nil {
			// Insert down the left subtree and reattach the result here.
			newLeft := n.left.Insert(key, cmp)
			root = newNode(n.key, newLeft, n.right)

			// The left side may have grown; rotate right if it did.
			root = root.rotateRightIfUnbalanced()
		} else {
			// No left child, the key becomes one.
			root = newNode(n.key, newLeaf(key), n.right)
		}
	} else if comparison > 0 {
		if n.right != nil {
			newRight := n.right.Insert(key, cmp)
			root = newNode(n.key, n.left, newRight)

			root = root.rotateLeftIfUnbalanced()
		} else {
			root = newNode(n.key, n.left, newLeaf(key))
		}
	} else {
		// Duplicate key; replace it in place of this node.
		root = newNode(key, n.left, n.right)
	}
	return root
}

// Delete returns the root of a new subtree without key, or nil when the
// subtree becomes empty. Deleting a key that is not present returns the
// receiver itself, with no copying anywhere on the path.
func (n *Node[K]) Delete(key K, cmp CompareFunc[K]) *Node[K] {
	var root *Node[K]
	comparison := cmp(key, n.key)
	if comparison < 0 {
		if n.left == nil {
			// Key is not in this subtree; nothing changes.
			return n
		}
		newLeft := n.left.Delete(key, cmp)
		if newLeft == n.left {
			return n
		}
		root = newNode(n.key, newLeft, n.right)

		// The left side may have shrunk; rotate left if it did.
		root = root.rotateLeftIfUnbalanced()
	} else if comparison > 0 {
		if n.right == nil {
			return n
		}
		newRight := n.right.Delete(key, cmp)
		if newRight == n.right {
			return n
		}
		root = newNode(n.key, n.left, newRight)

		root = root.rotateRightIfUnbalanced()
	} else {
		// Found the key. A node with zero or one child is replaced by that
		// child; a node with two children is replaced by a key promoted
		// from the taller subtree, which itself sits at most one child deep
		// in rotation terms and leaves no extra rebalancing to do.
		if n.left != nil && n.right != nil {
			replacement := n.findReplacementKey()

			// Remove the replacement from wherever it physically sits, then
			// rebuild this position around it with the adjusted children.
			trimmed := n.Delete(replacement, cmp)
			root = newNode(replacement, trimmed.left, trimmed.right)
		} else if n.left != nil {
			root = n.left
		} else if n.right != nil {
			root = n.right
		} else {
			root = nil
		}
	}
	return root
}

// findReplacementKey picks the key that takes over this position when a
// node with two children is deleted: the minimum of the right subtree when
// the right side is at least as tall, otherwise the maximum of the left
// subtree. Picking from the taller side avoids rotating after the removal.
func (n *Node[K]) findReplacementKey() K {
	var replacement *Node[K]
	if n.balanceFactor() > -1 {
		replacement = n.right
		for replacement.left != nil {
			replacement = replacement.left
		}
	} else {
		replacement = n.left
		for replacement.right != nil {
			replacement = replacement.right
		}
	}
	return replacement.key
}

// Contains reports whether key is present in the subtree rooted here.
// The descent is iterative and allocates nothing.
func (n *Node[K]) Contains(key K, cmp CompareFunc[K]) bool {
	current := n
	for current != nil {
		comparison := cmp(key, current.key)
		if comparison == 0 {
			return true
		}
		if comparison < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

// Range returns, in ascending order, every key k with start <= k <= end
// under the supplied order. Subtrees that cannot intersect the bounds are
// never visited.
func (n *Node[K]) Range(start, end K, cmp CompareFunc[K]) []K {
	var result []K
	return n.appendRange(start, end, result, cmp)
}

func (n *Node[K]) appendRange(start, end K, result []K, cmp CompareFunc[K]) []K {
	startsBefore := cmp(start, n.key) <= 0
	endsAfter := cmp(end, n.key) >= 0
	if startsBefore && n.left != nil {
		result = n.left.appendRange(start, end, result, cmp)
	}
	if startsBefore && endsAfter {
		result = append(result, n.key)
	}
	if endsAfter && n.right != nil {
		result = n.right.appendRange(start, end, result, cmp)
	}
	return result
}

// InOrder returns every key in the subtree in ascending order.
func (n *Node[K]) InOrder() []K {
	result := make([]K, 0, n.Size())
	return n.appendInOrder(result)
}

func (n *Node[K]) appendInOrder(result []K) []K {
	if n.left != nil {
		result = n.left.appendInOrder(result)
	}
	result = append(result, n.key)
	if n.right != nil {
		result = n.right.appendInOrder(result)
	}
	return result
}

// rotateRightIfUnbalanced restores the balance invariant after the left
// subtree grew (or the right one shrank) by at most one level.
func (n *Node[K]) rotateRightIfUnbalanced() *Node[K] {
	root := n
	if root.balanceFactor() < -1 {
		// If the left subtree leans right, it must rotate left first,
		// otherwise a single right rotation would just flip the imbalance.
		if root.left.balanceFactor() > 0 {
			newLeft := root.left.rotateLeft()
			root = newNode(root.key, newLeft, root.right)
		}

		root = root.rotateRight()
	}
	return root
}

// rotateLeftIfUnbalanced is the mirror image: right subtree grew, or the
// left one shrank.
func (n *Node[K]) rotateLeftIfUnbalanced() *Node[K] {
	root := n
	if root.balanceFactor() > 1 {
		if root.right.balanceFactor() < 0 {
			newRight := root.right.rotateRight()
			root = newNode(root.key, root.left, newRight)
		}

		root = root.rotateLeft()
	}
	return root
}

func (n *Node[K]) rotateLeft() *Node[K] {
	//             Left Rotation
	//
	//     [10]   <----Root--->     (15)
	//    /   \                     /  \
	//   5    (15)               [10]   20
	//        /  \               /  \
	//       12  20             5    12

	// Pivot is to the right.
	pivot := n.right

	// This node moves down and left; the pivot's left subtree becomes its
	// right.
	newSelf := newNode(n.key, n.left, pivot.left)

	// The pivot moves up, with this node as its new left.
	return newNode(pivot.key, newSelf, pivot.right)
}

func (n *Node[K]) rotateRight() *Node[K] {
	//             Right Rotation
	//
	//     [10]   <----Root--->      (5)
	//    /   \                     /  \
	//  (5)    15                  2   [10]
	//  /  \                           /  \
	// 2    7                         7    15

	// Pivot is to the left.
	pivot := n.left

	newSelf := newNode(n.key, pivot.right, n.right)

	return newNode(pivot.key, pivot.left, newSelf)
}
