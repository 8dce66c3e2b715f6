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

package sort

import "github.com/lakwet/voracious-sort-sub001/radix"

// CountingSortU16 sorts data in place in non-decreasing order with a counting
// sort over all 65,536 values. It runs in O(N + 2^16) time whatever the input
// distribution and allocates a single histogram.
func CountingSortU16(data []uint16) {
	countingSortU16(data, radix.BlockSize())
}

// countingSortU16 is CountingSortU16 with an explicit block size.
func countingSortU16(data []uint16, block int) {
	if len(data) < 2 {
		return
	}

	// A counter holds at most len(data), which fits in uint.
	counts := new([histSize16]uint)
	countU16(data, counts, block)

	// Rebuild the output in ascending value order.
	var pos uint
	for v := range counts {
		c := counts[v]
		if c == 0 {
			continue
		}
		// The counts sum to len(data), so end never passes it. Checking once
		// per bucket lets fillRun write without per-element bounds checks.
		end := pos + c
		if uint(len(data)) < end {
			panic("unreachable")
		}
		fillRun(data[pos:end], uint16(v), block)
		pos = end
	}
}

// countU16 adds one to counts[v] for every v in data, block elements per step.
func countU16(data []uint16, counts *[histSize16]uint, block int) {
	i := 0
	switch block {
	case radix.BlockOct:
		for ; i+8 <= len(data); i += 8 {
			b := data[i : i+8 : i+8]
			counts[b[0]]++
			counts[b[1]]++
			counts[b[2]]++
			counts[b[3]]++
			counts[b[4]]++
			counts[b[5]]++
			counts[b[6]]++
			counts[b[7]]++
		}
	case radix.BlockQuad:
		for ; i+4 <= len(data); i += 4 {
			b := data[i : i+4 : i+4]
			counts[b[0]]++
			counts[b[1]]++
			counts[b[2]]++
			counts[b[3]]++
		}
	}

	// Tail, or the whole input at block size 1.
	for _, v := range data[i:] {
		counts[v]++
	}
}

// CountingSortU8 sorts data in place with a counting sort over 256 values.
func CountingSortU8(data []uint8) {
	countingSortU8(data, radix.BlockSize())
}

func countingSortU8(data []uint8, block int) {
	if len(data) < 2 {
		return
	}

	var counts [histSize8]uint
	for _, v := range data {
		counts[v]++
	}

	var pos uint
	for v := range counts {
		c := counts[v]
		if c == 0 {
			continue
		}
		end := pos + c
		if uint(len(data)) < end {
			panic("unreachable")
		}
		fillRun(data[pos:end], uint8(v), block)
		pos = end
	}
}

// fillRun sets every element of run to v, block elements per step.
func fillRun[E ~uint8 | ~uint16](run []E, v E, block int) {
	i := 0
	switch block {
	case radix.BlockOct:
		for ; i+8 <= len(run); i += 8 {
			b := run[i : i+8 : i+8]
			b[0], b[1], b[2], b[3] = v, v, v, v
			b[4], b[5], b[6], b[7] = v, v, v, v
		}
	case radix.BlockQuad:
		for ; i+4 <= len(run); i += 4 {
			b := run[i : i+4 : i+4]
			b[0], b[1], b[2], b[3] = v, v, v, v
		}
	}
	for j := range run[i:] {
		run[i+j] = v
	}
}
