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

	"github.com/seqalgo/seqalgo-go/common"
)

// Pair holds two positions of a sequence with First < Second.
type Pair struct {
	First  int
	Second int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.First, p.Second)
}

// FindPair scans seq once from left to right and returns the first pair of positions whose
// values sum to target. "First" means the pair with the smallest Second, and among those the
// smallest First. The boolean is false, and the Pair zero, when no such pair exists.
//
// Sums are computed in T, so integer overflow wraps. For floating point types -0 and +0 are
// the same value and NaN never pairs with anything.
func FindPair[T common.Number](seq []T, target T) (Pair, bool) {
	return FindPairWithHasher(seq, target, nil)
}

// FindPairWithHasher is FindPair with a caller supplied hasher for the value index.
// A nil hasher selects common.DefaultHasher.
func FindPairWithHasher[T common.Number](seq []T, target T, hasher common.Hasher[T]) (Pair, bool) {
	if len(seq) < 2 {
		return Pair{}, false
	}
	if hasher == nil {
		hasher = common.DefaultHasher[T]()
	}
	seen := newIndexTable[T, int](len(seq), hasher)
	for i, v := range seq {
		if j, ok := seen.get(target - v); ok {
			return Pair{First: j, Second: i}, true
		}
		seen.putIfAbsent(v, i)
	}
	return Pair{}, false
}

// FindAllPairs returns every pair of positions j < i with seq[j]+seq[i] == target, ordered by
// Second and then by First. The result can hold up to n*(n-1)/2 pairs when many values repeat.
// It returns nil when there is no pair.
func FindAllPairs[T common.Number](seq []T, target T) []Pair {
	if len(seq) < 2 {
		return nil
	}
	seen := newIndexTable[T, []int](len(seq), common.DefaultHasher[T]())
	var pairs []Pair
	for i, v := range seq {
		if js, ok := seen.get(target - v); ok {
			for _, j := range js {
				pairs = append(pairs, Pair{First: j, Second: i})
			}
		}
		seen.adjustOrPutValue(v, func(positions []int) []int {
			return append(positions, i)
		})
	}
	return pairs
}
