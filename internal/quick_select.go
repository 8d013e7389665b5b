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

package internal

import (
	"cmp"
	"math/rand"
)

// RandomSource supplies pivot positions. Intn must return a uniform value in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// GlobalSource is backed by the top-level math/rand functions and is safe for concurrent use.
var GlobalSource RandomSource = globalSource{}

// QuickSelect returns the value that would sit at index k of arr[lo..hi] (inclusive) if that
// range were sorted ascending. The range is permuted in place.
// Callers must guarantee 0 <= lo <= k <= hi < len(arr).
func QuickSelect[T cmp.Ordered](arr []T, lo int, hi int, k int, rnd RandomSource) T {
	for lo < hi {
		j := partition(arr, lo, hi, rnd)
		if j == k {
			return arr[k]
		}
		if j > k {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
	return arr[k]
}

// partition is a Lomuto partition of arr[lo..hi] around a randomly chosen pivot.
// It returns the final position of the pivot.
func partition[T cmp.Ordered](arr []T, lo int, hi int, rnd RandomSource) int {
	r := lo + rnd.Intn(hi-lo+1)
	arr[r], arr[hi] = arr[hi], arr[r]
	pivot := arr[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if arr[j] <= pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[hi] = arr[hi], arr[i+1]
	return i + 1
}

// QuickSelectFunc is QuickSelect with a custom comparator.
// compare(a, b) must be negative when a < b, zero when equal and positive when a > b.
func QuickSelectFunc[T any](arr []T, lo int, hi int, k int, rnd RandomSource, compare func(a, b T) int) T {
	for lo < hi {
		j := partitionFunc(arr, lo, hi, rnd, compare)
		if j == k {
			return arr[k]
		}
		if j > k {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
	return arr[k]
}

func partitionFunc[T any](arr []T, lo int, hi int, rnd RandomSource, compare func(a, b T) int) int {
	r := lo + rnd.Intn(hi-lo+1)
	arr[r], arr[hi] = arr[hi], arr[r]
	pivot := arr[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if compare(arr[j], pivot) <= 0 {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[hi] = arr[hi], arr[i+1]
	return i + 1
}
