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

// RadixSort sorts data in place with an LSD radix sort, one 8-bit digit per
// pass from least to most significant. A pass is skipped when every element
// shares its digit, so narrow value ranges stored in wide types cost fewer
// passes. One scratch buffer of len(data) is allocated.
func RadixSort[T radix.Unsigned](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= sortInsertionThreshold {
		insertionSort(data)
		return
	}

	passes := radix.KeyWidth[T]() / radixBits
	scratch := make([]T, n)
	src, dst := data, scratch
	swapped := false
	for p := range passes {
		if radixPass(src, dst, uint(p*radixBits)) {
			src, dst = dst, src
			swapped = !swapped
		}
	}

	// After an odd number of scatters the result sits in scratch.
	if swapped {
		copy(data, src)
	}
}

// radixPass scatters src into dst by the digit at shift, keeping the relative
// order of equal digits. It reports false, leaving dst untouched, when every
// element has the same digit.
func radixPass[T radix.Unsigned](src, dst []T, shift uint) bool {
	var count [histSize8]int
	for _, v := range src {
		count[uint8(v>>shift)]++
	}
	if count[uint8(src[0]>>shift)] == len(src) {
		return false
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	dst = dst[:len(src)]
	for _, v := range src {
		d := uint8(v >> shift)
		dst[count[d]] = v
		count[d]++
	}
	return true
}
