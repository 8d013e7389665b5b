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
	"math/rand"
	"slices"

	"github.com/seqalgo/seqalgo-go/internal"
)

// RandomSource supplies pivot positions; *rand.Rand satisfies it.
type RandomSource = internal.RandomSource

// selectorOptions holds optional parameters for selector construction.
type selectorOptions struct {
	rnd RandomSource
}

// SelectorOption is a functional option for configuring a Selector.
type SelectorOption func(*selectorOptions)

// WithSeed makes pivot choices reproducible by drawing them from a private source seeded
// with seed.
func WithSeed(seed int64) SelectorOption {
	return func(opts *selectorOptions) {
		opts.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRandomSource draws pivot choices from src.
func WithRandomSource(src RandomSource) SelectorOption {
	return func(opts *selectorOptions) {
		if src != nil {
			opts.rnd = src
		}
	}
}

// Selector performs quickselect with a fixed comparator and pivot source.
//
// A Selector built with WithSeed or WithRandomSource shares a stateful source across calls
// and must not be used from multiple goroutines at once. Without options it draws from the
// global math/rand source, which is safe for concurrent use on distinct slices.
type Selector[T any] struct {
	compare func(a, b T) int
	rnd     RandomSource
}

// NewSelector returns a Selector ordering values with cmp.Compare.
func NewSelector[T cmp.Ordered](opts ...SelectorOption) *Selector[T] {
	s, _ := NewSelectorFunc(cmp.Compare[T], opts...)
	return s
}

// NewSelectorFunc returns a Selector ordering values with compare.
func NewSelectorFunc[T any](compare func(a, b T) int, opts ...SelectorOption) (*Selector[T], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	options := &selectorOptions{
		rnd: internal.GlobalSource,
	}
	for _, opt := range opts {
		opt(options)
	}
	return &Selector[T]{
		compare: compare,
		rnd:     options.rnd,
	}, nil
}

// Select behaves like the package level SelectFunc using the selector's comparator and
// pivot source. seq is permuted in place.
func (s *Selector[T]) Select(seq []T, left, right, k int) (T, error) {
	if err := checkArgs(len(seq), left, right, k); err != nil {
		return *new(T), err
	}
	return internal.QuickSelectFunc(seq, left, right, k, s.rnd, s.compare), nil
}

func (s *Selector[T]) SelectKth(seq []T, k int) (T, error) {
	return s.Select(seq, 0, len(seq)-1, k)
}

func (s *Selector[T]) Median(seq []T) (T, error) {
	return s.Select(seq, 0, len(seq)-1, (len(seq)-1)/2)
}

// SelectCopy selects from a private copy of seq and leaves seq unmodified.
func (s *Selector[T]) SelectCopy(seq []T, left, right, k int) (T, error) {
	if err := checkArgs(len(seq), left, right, k); err != nil {
		return *new(T), err
	}
	return internal.QuickSelectFunc(slices.Clone(seq), left, right, k, s.rnd, s.compare), nil
}

// Ranks returns the value of every rank in [0, len(seq)) by independent selections on
// fresh copies of seq. The result equals seq sorted ascending.
func (s *Selector[T]) Ranks(seq []T) []T {
	out := make([]T, len(seq))
	for k := range seq {
		out[k] = internal.QuickSelectFunc(slices.Clone(seq), 0, len(seq)-1, k, s.rnd, s.compare)
	}
	return out
}
