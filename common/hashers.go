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


package common

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// DefaultHashSeed seeds both hashers unless a caller picks another seed.
const DefaultHashSeed = uint64(9001)

// Murmur3Hasher hashes the canonical 8-byte little endian encoding of an item with murmur3.
type Murmur3Hasher[C Number] struct {
	Seed uint64
}

func (h Murmur3Hasher[C]) Hash(item C) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], CanonicalBits(item))
	return murmur3.SeedSum64(h.Seed, scratch[:])
}

// XXHasher hashes the canonical 8-byte little endian encoding of an item with XXHash64.
type XXHasher[C Number] struct {
	Seed uint64
}

func (h XXHasher[C]) Hash(item C) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], CanonicalBits(item))
	d := xxhash.NewWithSeed(h.Seed)
	d.Write(scratch[:])
	return d.Sum64()
}

// DefaultHasher returns the hasher used when the caller does not supply one:
// murmur3 for integer kinds, XXHash64 for floating point kinds.
func DefaultHasher[C Number]() Hasher[C] {
	if IsFloat[C]() {
		return XXHasher[C]{Seed: DefaultHashSeed}
	}
	return Murmur3Hasher[C]{Seed: DefaultHashSeed}
}

// IsFloat reports whether C has a floating point underlying type.
func IsFloat[C Number]() bool {
	switch reflect.TypeFor[C]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// CanonicalBits widens item to 64 bits so that equal values share one encoding.
// Signed integers are sign extended, floats are widened to float64 with -0 folded into +0.
func CanonicalBits[C Number](item C) uint64 {
	switch reflect.TypeFor[C]().Kind() {
	case reflect.Float32, reflect.Float64:
		f := float64(item)
		if f == 0 {
			return 0
		}
		return math.Float64bits(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(int64(item))
	default:
		return uint64(item)
	}
}
