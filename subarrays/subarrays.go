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


package subarrays

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"slices"
)

var ErrNegativeLength = errors.New("length must not be negative")

// Count returns the number of non-empty contiguous subarrays of a sequence of length n,
// n*(n+1)/2.
func Count(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	hi, lo := bits.Mul64(uint64(n), uint64(n)+1)
	if hi != 0 || lo/2 > math.MaxInt {
		return 0, fmt.Errorf("count of subarrays for length %d overflows int", n)
	}
	return int(lo / 2), nil
}

// Each calls fn for every non-empty contiguous subarray seq[start:end], ordered by start and
// then by length. sub aliases seq and must be copied if retained. Iteration stops as soon
// as fn returns false.
func Each[T any](seq []T, fn func(start, end int, sub []T) bool) {
	for start := range seq {
		for end := start + 1; end <= len(seq); end++ {
			if !fn(start, end, seq[start:end:end]) {
				return
			}
		}
	}
}

// Generate returns copies of every non-empty contiguous subarray of seq in the order used
// by Each. An empty seq yields an empty, non-nil result.
func Generate[T any](seq []T) [][]T {
	n, _ := Count(len(seq))
	out := make([][]T, 0, n)
	Each(seq, func(_, _ int, sub []T) bool {
		out = append(out, slices.Clone(sub))
		return true
	})
	return out
}
