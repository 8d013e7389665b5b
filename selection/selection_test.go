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


package selection

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangjohn/quickselect"

	"github.com/seqalgo/seqalgo-go/common/testutils"
)

func TestSelect(t *testing.T) {
	testCases := []struct {
		name     string
		seq      []int
		left     int
		right    int
		k        int
		expected int
	}{
		{name: "median of one to five", seq: []int{3, 1, 2, 5, 4}, left: 0, right: 4, k: 2, expected: 3},
		{name: "all equal", seq: []int{7, 7, 7}, left: 0, right: 2, k: 1, expected: 7},
		{name: "sorted input", seq: []int{1, 2, 3, 4, 5}, left: 0, right: 4, k: 2, expected: 3},
		{name: "minimum", seq: []int{9, -4, 0, 12}, left: 0, right: 3, k: 0, expected: -4},
		{name: "maximum", seq: []int{9, -4, 0, 12}, left: 0, right: 3, k: 3, expected: 12},
		{name: "singleton", seq: []int{42}, left: 0, right: 0, k: 0, expected: 42},
		{name: "singleton range inside longer slice", seq: []int{5, 6, 7}, left: 1, right: 1, k: 1, expected: 6},
		{name: "sub range", seq: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, left: 2, right: 6, k: 4, expected: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := slices.Clone(tc.seq)
			v, err := Select(seq, tc.left, tc.right, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
			assert.Equal(t, tc.expected, seq[tc.k])
		})
	}
}

func TestSelectErrors(t *testing.T) {
	testCases := []struct {
		name  string
		seq   []int
		left  int
		right int
		k     int
		err   error
	}{
		{name: "empty", seq: nil, left: 0, right: 0, k: 0, err: ErrEmptySequence},
		{name: "k above range", seq: []int{3, 1, 2}, left: 0, right: 2, k: 3, err: ErrRankOutOfRange},
		{name: "k below range", seq: []int{3, 1, 2}, left: 1, right: 2, k: 0, err: ErrRankOutOfRange},
		{name: "negative k", seq: []int{3, 1, 2}, left: 0, right: 2, k: -1, err: ErrRankOutOfRange},
		{name: "left after right", seq: []int{3, 1, 2}, left: 2, right: 1, k: 1, err: ErrInvalidRange},
		{name: "negative left", seq: []int{3, 1, 2}, left: -1, right: 1, k: 0, err: ErrInvalidRange},
		{name: "right past end", seq: []int{3, 1, 2}, left: 0, right: 3, k: 1, err: ErrInvalidRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := slices.Clone(tc.seq)
			_, err := Select(seq, tc.left, tc.right, tc.k)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.seq, seq, "rejected calls must not touch the input")

			_, err = SelectFunc(seq, tc.left, tc.right, tc.k, cmp.Compare[int])
			assert.ErrorIs(t, err, tc.err)

			_, err = SelectCopy(seq, tc.left, tc.right, tc.k)
			assert.ErrorIs(t, err, tc.err)

			_, err = NewSelector[int](WithSeed(1)).Select(seq, tc.left, tc.right, tc.k)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSelectKthAndMedian(t *testing.T) {
	v, err := SelectKth([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = Median([]int{8, 2, 6, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, v, "even length takes the lower median")

	_, err = SelectKth([]int{}, 0)
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = Median([]float64{})
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestSelectMatchesSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(testutils.DefaultTestSeed))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rnd.Intn(100)
		seq := testutils.RandomInts(rnd, n, 1+rnd.Intn(2*n))
		sorted := testutils.Sorted(seq)
		k := rnd.Intn(n)

		v, err := Select(slices.Clone(seq), 0, n-1, k)
		require.NoError(t, err)
		assert.Equal(t, sorted[k], v)
	}
}

func TestSelectAgreesWithIndependentQuickselect(t *testing.T) {
	rnd := rand.New(rand.NewSource(testutils.DefaultTestSeed + 1))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rnd.Intn(200)
		seq := testutils.RandomInts(rnd, n, 50)
		k := rnd.Intn(n)

		smallest := slices.Clone(seq)
		require.NoError(t, quickselect.QuickSelect(quickselect.IntSlice(smallest), k+1))
		want := slices.Max(smallest[:k+1])

		v, err := SelectKth(slices.Clone(seq), k)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestSelectIsPermutationInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(testutils.DefaultTestSeed + 2))
	seq := testutils.RandomFloats(rnd, 64)
	for k := range seq {
		want, err := SelectKth(slices.Clone(seq), k)
		require.NoError(t, err)

		shuffled := slices.Clone(seq)
		rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := SelectKth(shuffled, k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSelectPermutesOnlyTheRange(t *testing.T) {
	seq := []int{100, 5, 3, 9, 1, 7, -100}
	v, err := Select(seq, 1, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 100, seq[0])
	assert.Equal(t, -100, seq[6])
	assert.ElementsMatch(t, []int{5, 3, 9, 1, 7}, seq[1:6])
	for i := 1; i < 4; i++ {
		assert.LessOrEqual(t, seq[i], v)
	}
	assert.GreaterOrEqual(t, seq[5], v)
}

func TestSelectCopyDoesNotMutate(t *testing.T) {
	seq := []int{5, 4, 3, 2, 1}
	v, err := SelectCopy(seq, 0, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seq)

	s := NewSelector[int]()
	v, err = s.SelectCopy(seq, 0, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seq)
}

func TestSelectFunc(t *testing.T) {
	type job struct {
		id       string
		priority int
	}
	jobs := []job{{"a", 3}, {"b", 1}, {"c", 4}, {"d", 1}, {"e", 5}}
	byPriority := func(a, b job) int { return cmp.Compare(a.priority, b.priority) }

	j, err := SelectFunc(jobs, 0, len(jobs)-1, 4, byPriority)
	require.NoError(t, err)
	assert.Equal(t, "e", j.id)

	_, err = SelectFunc(jobs, 0, len(jobs)-1, 0, nil)
	assert.ErrorIs(t, err, ErrNilCompare)

	_, err = NewSelectorFunc[job](nil)
	assert.ErrorIs(t, err, ErrNilCompare)
}

func TestSelectFuncHandlesNaN(t *testing.T) {
	seq := []float64{2, math.NaN(), 1, 3}
	v, err := SelectFunc(seq, 0, 3, 0, cmp.Compare[float64])
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "cmp.Compare orders NaN first")

	v, err = SelectFunc(seq, 0, 3, 3, cmp.Compare[float64])
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestSelectorSeedIsReproducible(t *testing.T) {
	rnd := rand.New(rand.NewSource(testutils.DefaultTestSeed + 3))
	seq := testutils.RandomInts(rnd, 500, 1000)

	a := slices.Clone(seq)
	b := slices.Clone(seq)
	va, err := NewSelector[int](WithSeed(99)).Select(a, 0, len(a)-1, 250)
	require.NoError(t, err)
	vb, err := NewSelector[int](WithSeed(99)).Select(b, 0, len(b)-1, 250)
	require.NoError(t, err)

	assert.Equal(t, va, vb)
	assert.Equal(t, a, b, "same seed must yield the same permutation")
}

type countingSource struct {
	calls int
	rnd   *rand.Rand
}

func (c *countingSource) Intn(n int) int {
	c.calls++
	return c.rnd.Intn(n)
}

func TestSelectorUsesInjectedSource(t *testing.T) {
	src := &countingSource{rnd: rand.New(rand.NewSource(5))}
	s := NewSelector[int](WithRandomSource(src))
	v, err := s.SelectKth([]int{5, 1, 4, 2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Positive(t, src.calls)

	// a nil source keeps the default
	s = NewSelector[int](WithRandomSource(nil))
	v, err = s.Median([]int{5, 1, 4, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestSelectorRanksReproduceSortedOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(testutils.DefaultTestSeed + 4))
	seq := testutils.RandomInts(rnd, 40, 10)
	orig := slices.Clone(seq)

	ranks := NewSelector[int](WithSeed(1)).Ranks(seq)
	assert.Equal(t, testutils.Sorted(seq), ranks)
	assert.Equal(t, orig, seq)
	assert.Empty(t, NewSelector[int]().Ranks(nil))
}
