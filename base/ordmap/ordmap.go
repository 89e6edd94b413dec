// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map combining a slice, which
// preserves the order in which items were added, with a key-to-index
// map for fast lookup. The shell keys its window, timer, and thread
// registries with it: iteration order is deterministic (insertion
// order), which the event loop relies on when electing the window
// whose graphics context loads the function table.
package ordmap

import (
	"fmt"
	"slices"
)

// KeyValue is one entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic insertion-ordered map. The zero Map is ready to use.
type Map[K comparable, V any] struct {

	// Order holds the entries in the order they were added.
	Order []KeyValue[K, V]

	// index maps each key to its position in Order.
	index map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.index == nil {
		om.index = make(map[K]int)
	}
}

// Reset removes all entries.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.index = nil
}

// Add sets the value for the given key. An existing key keeps its
// position in the order; a new key is appended.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, ok := om.index[key]; ok {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
	} else {
		om.index[key] = len(om.Order)
		om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	}
}

// ValueByKey returns the value for the given key, or the zero value
// for a missing key. See [Map.ValueByKeyTry] to distinguish the two.
func (om *Map[K, V]) ValueByKey(key K) V {
	if idx, ok := om.index[key]; ok {
		return om.Order[idx].Value
	}
	var zv V
	return zv
}

// ValueByKeyTry returns the value for the given key, with false for a
// missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, ok := om.index[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// HasKey reports whether the key is present.
func (om *Map[K, V]) HasKey(key K) bool {
	_, ok := om.index[key]
	return ok
}

// ValueByIndex returns the value at the given position in the order.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// KeyByIndex returns the key at the given position in the order.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// Len returns the number of entries.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey removes the entry with the given key, returning false if
// it is not present. This renumbers the index of every later entry.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	for o := idx + 1; o < len(om.Order); o++ {
		om.index[om.Order[o].Key] = o - 1
	}
	delete(om.index, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// String returns a string representation of the entries in order.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
