// Copyright 2025 voracious-sort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gen generates benchmark and test inputs for the sort kernels.
//
// Every generator returns a freshly allocated slice owned by the caller.
// Randomized generators are a pure function of their seed.
package gen

import (
	"math/rand/v2"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

// newRand returns a PCG source for seed. The second PCG word is derived from
// the seed so that nearby seeds give unrelated streams.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform returns n keys drawn uniformly from the full range of T.
func Uniform[T radix.Unsigned](n int, seed uint64) []T {
	r := newRand(seed)
	data := make([]T, n)
	for i := range data {
		data[i] = T(r.Uint64())
	}
	return data
}

// Uniform16 returns n values drawn uniformly from [0, 65535].
func Uniform16(n int, seed uint64) []uint16 {
	return Uniform[uint16](n, seed)
}

// AllEqual returns n copies of v.
func AllEqual[T any](n int, v T) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return data
}

// AscSawtooth16 returns 0, 1, 2, ... wrapping to 0 after 65535.
func AscSawtooth16(n int) []uint16 {
	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(i)
	}
	return data
}

// DescSawtooth16 returns n-1, n-2, ..., 1, 0, each taken modulo 65536.
func DescSawtooth16(n int) []uint16 {
	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(n - 1 - i)
	}
	return data
}

// Bounded16 returns n values drawn uniformly from [0, bound).
// It panics if bound is not in [1, 65536].
func Bounded16(n, bound int, seed uint64) []uint16 {
	if bound < 1 || bound > 1<<16 {
		panic("gen: bound out of range")
	}
	r := newRand(seed)
	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(r.IntN(bound))
	}
	return data
}

// Zipf16 returns n values where half the slice holds one value, a quarter a
// second value, an eighth a third, and so on until the slice is full. The
// result is shuffled. Values of different ranks may coincide.
func Zipf16(n int, seed uint64) []uint16 {
	r := newRand(seed)
	data := make([]uint16, n)
	pos := 0
	for pos < n {
		run := (n - pos + 1) / 2
		v := uint16(r.Uint32())
		for i := pos; i < pos+run; i++ {
			data[i] = v
		}
		pos += run
	}
	r.Shuffle(n, func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
	return data
}

// Bools returns n booleans, each true with probability 1/2.
func Bools(n int, seed uint64) []bool {
	r := newRand(seed)
	data := make([]bool, n)
	for i := range data {
		data[i] = r.Uint64()&1 == 1
	}
	return data
}

// Charset returns n bytes drawn uniformly from alphabet.
// It panics if alphabet is empty.
func Charset(n int, alphabet string, seed uint64) []byte {
	if alphabet == "" {
		panic("gen: empty alphabet")
	}
	r := newRand(seed)
	data := make([]byte, n)
	for i := range data {
		data[i] = alphabet[r.IntN(len(alphabet))]
	}
	return data
}

// Lowercase is the default alphabet for Strings.
const Lowercase = "abcdefghijklmnopqrstuvwxyz"

// Strings returns n strings of length [0, maxLen] over Lowercase.
func Strings(n, maxLen int, seed uint64) []string {
	r := newRand(seed)
	data := make([]string, n)
	buf := make([]byte, maxLen)
	for i := range data {
		l := r.IntN(maxLen + 1)
		for j := range l {
			buf[j] = Lowercase[r.IntN(len(Lowercase))]
		}
		data[i] = string(buf[:l])
	}
	return data
}
