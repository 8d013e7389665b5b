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
	"errors"
	"fmt"
	"slices"

	"github.com/seqalgo/seqalgo-go/internal"
)

var (
	ErrEmptySequence  = errors.New("sequence is empty")
	ErrInvalidRange   = errors.New("invalid index range")
	ErrRankOutOfRange = errors.New("rank out of range")
	ErrNilCompare     = errors.New("no compare function provided")
)

// Select returns the value that would occupy index k of seq[left..right] (inclusive) if that
// range were sorted ascending.
//
// seq is permuted in place: on return seq[k] holds the selected value, every element of
// seq[left..k-1] is <= it and every element of seq[k+1..right] is >= it. Elements outside
// [left, right] are not touched. Use SelectCopy to leave seq untouched.
//
// The ordering of NaN values is undefined; use SelectFunc with cmp.Compare for float data
// that may contain NaN.
func Select[T cmp.Ordered](seq []T, left, right, k int) (T, error) {
	if err := checkArgs(len(seq), left, right, k); err != nil {
		return *new(T), err
	}
	return internal.QuickSelect(seq, left, right, k, internal.GlobalSource), nil
}

// SelectFunc is Select with a custom comparator. compare(a, b) must be negative when a
// sorts before b, zero when they are equivalent and positive otherwise.
func SelectFunc[T any](seq []T, left, right, k int, compare func(a, b T) int) (T, error) {
	if compare == nil {
		return *new(T), ErrNilCompare
	}
	if err := checkArgs(len(seq), left, right, k); err != nil {
		return *new(T), err
	}
	return internal.QuickSelectFunc(seq, left, right, k, internal.GlobalSource, compare), nil
}

// SelectKth selects over the whole of seq.
func SelectKth[T cmp.Ordered](seq []T, k int) (T, error) {
	return Select(seq, 0, len(seq)-1, k)
}

// Median returns the lower median of seq, the value of rank (len(seq)-1)/2.
func Median[T cmp.Ordered](seq []T) (T, error) {
	return Select(seq, 0, len(seq)-1, (len(seq)-1)/2)
}

// SelectCopy is Select on a private copy of seq. The caller's slice is not modified.
func SelectCopy[T cmp.Ordered](seq []T, left, right, k int) (T, error) {
	if err := checkArgs(len(seq), left, right, k); err != nil {
		return *new(T), err
	}
	return internal.QuickSelect(slices.Clone(seq), left, right, k, internal.GlobalSource), nil
}

func checkArgs(n, left, right, k int) error {
	if n == 0 {
		return ErrEmptySequence
	}
	if left < 0 || right >= n || left > right {
		return fmt.Errorf("%w: [%d, %d] for sequence of length %d", ErrInvalidRange, left, right, n)
	}
	if k < left || k > right {
		return fmt.Errorf("%w: k=%d is outside [%d, %d]", ErrRankOutOfRange, k, left, right)
	}
	return nil
}
