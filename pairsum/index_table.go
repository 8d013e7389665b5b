/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package pairsum

import (
	"fmt"
	"strings"

	"github.com/seqalgo/seqalgo-go/common"
)

const (
	indexTableLoadFactor = float64(0.75)
	lgMinIndexTableSize  = 3
)

// indexTable maps values to positions with open addressing and linear probing.
// Its length is always a power of two and it doubles once the load threshold is passed,
// so there is always an empty slot to terminate a probe.
type indexTable[T common.Number, V any] struct {
	lgLength      int
	loadThreshold int
	keys          []T
	values        []V
	states        []int32 // 0 for an empty slot, otherwise the probe distance plus one
	numActive     int
	hasher        common.Hasher[T]
}

// newIndexTable returns a table sized for about sizeHint keys before its first resize.
func newIndexTable[T common.Number, V any](sizeHint int, hasher common.Hasher[T]) *indexTable[T, V] {
	size := max(common.CeilPowerOf2(sizeHint), 1<<lgMinIndexTableSize)
	t := &indexTable[T, V]{hasher: hasher}
	t.allocate(size)
	return t
}

func (t *indexTable[T, V]) allocate(size int) {
	t.keys = make([]T, size)
	t.values = make([]V, size)
	t.states = make([]int32, size)
	t.lgLength = common.ExactLog2OfLong(uint64(size))
	t.loadThreshold = int(float64(size) * indexTableLoadFactor)
	t.numActive = 0
}

// get returns the value stored for key. NaN keys are never found.
func (t *indexTable[T, V]) get(key T) (V, bool) {
	probe := t.hashProbe(key)
	if t.states[probe] > 0 {
		return t.values[probe], true
	}
	return *new(V), false
}

// putIfAbsent stores value under key unless key is already present.
// It reports whether the value was stored.
func (t *indexTable[T, V]) putIfAbsent(key T, value V) bool {
	probe, drift := t.probeWithDrift(key)
	if t.states[probe] > 0 {
		return false
	}
	t.insertAt(probe, drift, key, value)
	return true
}

// adjustOrPutValue replaces the value under key with adjust(old). An absent key is inserted
// with adjust applied to the zero value.
func (t *indexTable[T, V]) adjustOrPutValue(key T, adjust func(V) V) {
	probe, drift := t.probeWithDrift(key)
	if t.states[probe] > 0 {
		t.values[probe] = adjust(t.values[probe])
		return
	}
	t.insertAt(probe, drift, key, adjust(*new(V)))
}

func (t *indexTable[T, V]) insertAt(probe int, drift int32, key T, value V) {
	t.keys[probe] = key
	t.values[probe] = value
	t.states[probe] = drift
	t.numActive++
	if t.numActive > t.loadThreshold {
		t.resize(2 * len(t.keys))
	}
}

func (t *indexTable[T, V]) resize(newSize int) {
	oldKeys := t.keys
	oldValues := t.values
	oldStates := t.states
	t.allocate(newSize)
	for i := range oldKeys {
		if oldStates[i] > 0 {
			probe, drift := t.probeWithDrift(oldKeys[i])
			t.keys[probe] = oldKeys[i]
			t.values[probe] = oldValues[i]
			t.states[probe] = drift
			t.numActive++
		}
	}
}

func (t *indexTable[T, V]) hashProbe(key T) int {
	probe, _ := t.probeWithDrift(key)
	return probe
}

// probeWithDrift returns the slot holding key, or the empty slot where it belongs, together
// with the state value a new entry there would carry.
func (t *indexTable[T, V]) probeWithDrift(key T) (int, int32) {
	arrayMask := len(t.keys) - 1
	probe := int(t.hasher.Hash(key)) & arrayMask
	drift := int32(1)
	for t.states[probe] > 0 && t.keys[probe] != key {
		probe = (probe + 1) & arrayMask
		drift++
	}
	return probe, drift
}

func (t *indexTable[T, V]) String() string {
	var sb strings.Builder
	sb.WriteString("IndexTable:\n")
	sb.WriteString(fmt.Sprintf("  %12s:%11s %20s %s\n", "Index", "States", "Keys", "Values"))
	for i := range t.keys {
		if t.states[i] <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %12d:%11d %20v %v\n", i, t.states[i], t.keys[i], t.values[i]))
	}
	return sb.String()
}
