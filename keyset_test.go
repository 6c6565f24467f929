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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeySet() *KeySet {
	return NewKeySet(&defaultConfig)
}

func TestKeySetAddRemoveHas(t *testing.T) {
	ks := newTestKeySet()

	assert.True(t, ks.Add("banana"))
	assert.True(t, ks.Add("apple"))
	assert.False(t, ks.Add("apple"), "re-adding must not grow the set")
	assert.Equal(t, 2, ks.Len())

	assert.True(t, ks.Has("apple"))
	assert.False(t, ks.Has("cherry"))

	assert.True(t, ks.Remove("apple"))
	assert.False(t, ks.Remove("apple"), "removing twice reports absence")
	assert.False(t, ks.Has("apple"))
	assert.Equal(t, 1, ks.Len())
}

func TestKeySetHasAfterRemove(t *testing.T) {
	// The bloom filter still remembers removed keys; the tree must stay
	// authoritative for those maybes.
	ks := newTestKeySet()
	ks.Add("kubectl")
	ks.Remove("kubectl")
	assert.False(t, ks.Has("kubectl"))
}

func TestKeySetRangeAndKeys(t *testing.T) {
	ks := newTestKeySet()
	for _, key := range []string{"delta", "alpha", "echo", "bravo", "charlie"} {
		ks.Add(key)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, ks.Keys())
	assert.Equal(t, []string{"bravo", "charlie", "delta"}, ks.Range("bravo", "delta"))
	assert.Empty(t, ks.Range("x", "z"))
}

func TestKeySetUndo(t *testing.T) {
	ks := newTestKeySet()
	ks.Add("one")
	ks.Add("two")
	require.NoError(t, ks.Undo())
	assert.Equal(t, []string{"one"}, ks.Keys())
	require.NoError(t, ks.Undo())
	assert.Equal(t, 0, ks.Len())
	assert.Error(t, ks.Undo(), "undo past the first version must fail")
}

func TestKeySetSnapshots(t *testing.T) {
	ks := newTestKeySet()
	ks.Add("apple")
	ks.Add("banana")
	snap := ks.TakeSnapshot("fruit")
	assert.Equal(t, 2, snap.Tree.Size())

	ks.Add("carrot")
	ks.Remove("apple")
	assert.Equal(t, []string{"banana", "carrot"}, ks.Keys())

	// The named version is frozen at the moment it was taken.
	require.NoError(t, ks.RestoreSnapshot("fruit"))
	assert.Equal(t, []string{"apple", "banana"}, ks.Keys())

	assert.Error(t, ks.RestoreSnapshot("vegetables"))

	snaps := ks.Snapshots()
	require.Len(t, snaps, 1)
	assert.False(t, snaps["fruit"].TakenAt.IsZero())
}

func TestKeySetSnapshotSurvivesLaterMutations(t *testing.T) {
	ks := newTestKeySet()
	for _, key := range []string{"a", "b", "c", "d"} {
		ks.Add(key)
	}
	before := ks.Current()

	for _, key := range []string{"a", "b", "c", "d"} {
		ks.Remove(key)
	}
	assert.Equal(t, 0, ks.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, before.Keys(),
		"a version captured before mutation must not change")
}

func TestKeySetConcurrentReaders(t *testing.T) {
	ks := newTestKeySet()
	for _, key := range []string{"m", "f", "t", "b", "j", "p", "x"} {
		ks.Add(key)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				tree := ks.Current()
				_ = tree.Keys()
				_ = tree.Contains("m")
				_ = tree.Range("b", "t")
			}
		}()
	}
	// One writer publishing new versions while the readers walk old ones.
	for j := 0; j < 200; j++ {
		ks.Add("k")
		ks.Remove("k")
	}
	wg.Wait()
}

func TestKeySetWithoutDedupFilter(t *testing.T) {
	config := defaultConfig
	config.Load.DedupFilter = false
	ks := NewKeySet(&config)
	ks.Add("apple")
	assert.True(t, ks.Has("apple"))
	assert.False(t, ks.Has("pear"))
}
