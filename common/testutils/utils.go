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


package testutils

import (
	"cmp"
	"math/rand"
	"slices"
)

// DefaultTestSeed keeps randomized tests reproducible.
const DefaultTestSeed = int64(20240204)

// RandomInts returns n values drawn uniformly from [0, bound).
// A small bound produces many duplicates.
func RandomInts(rnd *rand.Rand, n int, bound int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rnd.Intn(bound)
	}
	return out
}

// RandomFloats returns n values drawn from a normal distribution.
func RandomFloats(rnd *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rnd.NormFloat64()
	}
	return out
}

// Sorted returns an ascending copy of s.
func Sorted[T cmp.Ordered](s []T) []T {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
