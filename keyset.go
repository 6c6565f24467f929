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
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/keytree/avl"
)

const (
	// Bloom filter sizing for the negative-membership screen.
	bloomEstimatedKeys = 100_000
	bloomFalsePositive = 0.01
	// How many previous versions Undo can walk back through.
	maxUndoDepth = 100
	// Clean up expired snapshots every 5 minutes when a TTL is set
	snapshotCleanupInterval = 5 * time.Minute
)

// Snapshot pairs a frozen tree version with the moment it was taken.
// Because tree versions are immutable, taking one costs a single reference.
type Snapshot struct {
	Tree    avl.Tree[string]
	TakenAt time.Time
}

// KeySet publishes successive versions of the sorted key set. The tree
// itself never locks; readers walk whatever version they grabbed, and this
// struct only serializes the read-modify-publish of the current reference.
type KeySet struct {
	mu     sync.RWMutex
	tree   avl.Tree[string]
	filter *bloom.BloomFilter // nil when the dedup screen is disabled
	undo   []avl.Tree[string]

	snaps   *cache.Cache
	snapTTL time.Duration
}

// NewKeySet builds an empty set honoring the loaded configuration.
func NewKeySet(config *Config) *KeySet {
	ks := &KeySet{
		tree: avl.New(strings.Compare),
	}
	if config == nil {
		config = &defaultConfig
	}
	if config.Load.DedupFilter {
		ks.filter = bloom.NewWithEstimates(bloomEstimatedKeys, bloomFalsePositive)
	}
	if config.Snapshots.TTLMinutes > 0 {
		ks.snapTTL = time.Duration(config.Snapshots.TTLMinutes) * time.Minute
		ks.snaps = cache.New(ks.snapTTL, snapshotCleanupInterval)
	} else {
		ks.snapTTL = cache.NoExpiration
		ks.snaps = cache.New(cache.NoExpiration, 0)
	}
	return ks
}

// Current returns the version of the set published right now. The returned
// tree stays valid and unchanged however long the caller keeps it.
func (ks *KeySet) Current() avl.Tree[string] {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return ks.tree
}

// publish swaps in a new version, remembering the previous one for Undo.
func (ks *KeySet) publish(next avl.Tree[string]) {
	ks.undo = append(ks.undo, ks.tree)
	if len(ks.undo) > maxUndoDepth {
		ks.undo = ks.undo[1:]
	}
	ks.tree = next
}

// Add inserts key and reports whether the set grew. Re-adding an existing
// key is fine and reports false.
func (ks *KeySet) Add(key string) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	next := ks.tree.Insert(key)
	grew := next.Size() > ks.tree.Size()
	ks.publish(next)
	if ks.filter != nil {
		ks.filter.AddString(key)
	}
	return grew
}

// Remove deletes key and reports whether it was present. The bloom filter
// is intentionally left alone: it may only say "maybe", and the tree stays
// authoritative for every maybe.
func (ks *KeySet) Remove(key string) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	next := ks.tree.Delete(key)
	removed := next.Size() < ks.tree.Size()
	if removed {
		ks.publish(next)
	}
	return removed
}

// Has reports membership. A key the filter has never seen is rejected
// without touching the tree.
func (ks *KeySet) Has(key string) bool {
	ks.mu.RLock()
	filter, tree := ks.filter, ks.tree
	ks.mu.RUnlock()

	if filter != nil && !filter.TestString(key) {
		return false
	}
	return tree.Contains(key)
}

// Range returns every key k with start <= k <= end in ascending order.
func (ks *KeySet) Range(start, end string) []string {
	return ks.Current().Range(start, end)
}

// Keys returns the full ascending key listing.
func (ks *KeySet) Keys() []string {
	return ks.Current().Keys()
}

// Len reports how many keys the current version holds.
func (ks *KeySet) Len() int {
	return ks.Current().Size()
}

// Height reports the height of the current version.
func (ks *KeySet) Height() int {
	return ks.Current().Height()
}

// Undo republishes the version that preceded the last mutation.
func (ks *KeySet) Undo() error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if len(ks.undo) == 0 {
		return fmt.Errorf("nothing to undo")
	}
	ks.tree = ks.undo[len(ks.undo)-1]
	ks.undo = ks.undo[:len(ks.undo)-1]
	return nil
}

// TakeSnapshot names the current version so it can be restored later.
func (ks *KeySet) TakeSnapshot(name string) Snapshot {
	snap := Snapshot{Tree: ks.Current(), TakenAt: time.Now()}
	ks.snaps.Set(name, snap, ks.snapTTL)
	return snap
}

// RestoreSnapshot republishes a named version. The versions taken or
// published since remain untouched in the undo history.
func (ks *KeySet) RestoreSnapshot(name string) error {
	val, ok := ks.snaps.Get(name)
	if !ok {
		return fmt.Errorf("no snapshot named %q", name)
	}
	snap := val.(Snapshot)

	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.publish(snap.Tree)

	// The filter must have seen every key in the restored version, or the
	// negative screen would start lying.
	if ks.filter != nil {
		for _, key := range snap.Tree.Keys() {
			ks.filter.AddString(key)
		}
	}
	return nil
}

// Snapshots lists the named snapshots still alive in the store.
func (ks *KeySet) Snapshots() map[string]Snapshot {
	items := ks.snaps.Items()
	result := make(map[string]Snapshot, len(items))
	for name, item := range items {
		result[name] = item.Object.(Snapshot)
	}
	return result
}
