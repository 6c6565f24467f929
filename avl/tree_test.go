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

import (
	"strings"
	"testing"
)

func TestEmptyTree(t *testing.T) {
	tree := New(strings.Compare)
	if !tree.IsEmpty() {
		t.Error("new tree is not empty")
	}
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("empty tree: size %d height %d, want 0 0", tree.Size(), tree.Height())
	}
	if tree.Contains("anything") {
		t.Error("empty tree contains a key")
	}
	if keys := tree.Keys(); len(keys) != 0 {
		t.Errorf("empty tree yielded keys %v", keys)
	}
	if r := tree.Range("a", "z"); len(r) != 0 {
		t.Errorf("empty tree yielded range %v", r)
	}
	// Deleting from the empty tree is a no-op, not a panic.
	tree = tree.Delete("anything")
	if !tree.IsEmpty() {
		t.Error("delete on empty tree produced a non-empty tree")
	}
}

func TestTreeOperations(t *testing.T) {
	testCases := []struct {
		name          string
		keysToInsert  []string
		keysToDelete  []string
		expectedOrder []string
	}{
		{
			name:          "Simple Insertion",
			keysToInsert:  []string{"banana", "apple", "cherry"},
			expectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			name:          "Mixed Operations",
			keysToInsert:  []string{"dog", "cat", "elephant", "bird"},
			keysToDelete:  []string{"cat"},
			expectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			name:          "Duplicate Insert Is Not Growth",
			keysToInsert:  []string{"apple", "apple", "apple"},
			expectedOrder: []string{"apple"},
		},
		{
			name:          "Delete To Empty",
			keysToInsert:  []string{"only"},
			keysToDelete:  []string{"only"},
			expectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New(strings.Compare)
			for _, key := range tc.keysToInsert {
				tree = tree.Insert(key)
			}
			for _, key := range tc.keysToDelete {
				tree = tree.Delete(key)
			}
			got := tree.Keys()
			if len(got) != len(tc.expectedOrder) {
				t.Fatalf("keys = %v, want %v", got, tc.expectedOrder)
			}
			for i := range tc.expectedOrder {
				if got[i] != tc.expectedOrder[i] {
					t.Fatalf("keys = %v, want %v", got, tc.expectedOrder)
				}
			}
			if tree.Size() != len(tc.expectedOrder) {
				t.Errorf("size = %d, want %d", tree.Size(), len(tc.expectedOrder))
			}
		})
	}
}

func TestTreeVersionsAreIndependent(t *testing.T) {
	v1 := New(strings.Compare)
	for _, key := range []string{"kubectl", "git", "docker", "cargo"} {
		v1 = v1.Insert(key)
	}
	v2 := v1.Delete("git")
	v3 := v2.Insert("terraform")

	if !v1.Contains("git") {
		t.Error("old version lost a key after delete on a newer version")
	}
	if v2.Contains("git") || v3.Contains("git") {
		t.Error("deleted key still visible in newer versions")
	}
	if v1.Contains("terraform") || v2.Contains("terraform") {
		t.Error("insert leaked into older versions")
	}
	if v1.Size() != 4 || v2.Size() != 3 || v3.Size() != 4 {
		t.Errorf("sizes = %d %d %d, want 4 3 4", v1.Size(), v2.Size(), v3.Size())
	}
}

// The order is entirely the comparison's business: flipping it flips the
// tree, with no cooperation from the key type.
func TestInjectedOrdering(t *testing.T) {
	reverse := func(a, b string) int { return strings.Compare(b, a) }
	tree := New(reverse)
	for _, key := range []string{"apple", "cherry", "banana"} {
		tree = tree.Insert(key)
	}
	got := tree.Keys()
	want := []string{"cherry", "banana", "apple"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
	if r := tree.Range("cherry", "banana"); len(r) != 3 {
		t.Errorf("reverse range = %v, want all three keys", r)
	}
}

func TestTreeRangeScenario(t *testing.T) {
	tree := New(func(a, b int) int { return a - b })
	for _, key := range []int{1, 3, 4, 5, 7, 8, 9} {
		tree = tree.Insert(key)
	}
	got := tree.Range(3, 7)
	want := []int{3, 4, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("range = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range = %v, want %v", got, want)
		}
	}
}
