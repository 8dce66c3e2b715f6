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

// SortRadixable sorts data in place by the key each element projects to.
// RadixKey is called exactly once per element. The sort is stable: elements
// with equal keys keep their relative order.
func SortRadixable[T radix.Radixable[K], K radix.Unsigned](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	keys := make([]uint64, n)
	for i := range data {
		keys[i] = uint64(data[i].RadixKey())
	}
	sortByKeys(data, keys, radix.KeyWidth[K]()/radixBits)
}

// sortByKeys sorts data and keys together by keys, using the low passes
// bytes of each key.
func sortByKeys[T any](data []T, keys []uint64, passes int) {
	n := len(data)
	if n <= sortInsertionThreshold {
		insertionSortByKeys(data, keys)
		return
	}

	scratch := make([]T, n)
	scratchKeys := make([]uint64, n)
	src, srcKeys := data, keys
	dst, dstKeys := scratch, scratchKeys
	swapped := false
	for p := range passes {
		if keyedPass(src, srcKeys, dst, dstKeys, uint(p*radixBits)) {
			src, dst = dst, src
			srcKeys, dstKeys = dstKeys, srcKeys
			swapped = !swapped
		}
	}
	if swapped {
		copy(data, src)
	}
}

// keyedPass is radixPass for elements carried alongside precomputed keys.
func keyedPass[T any](src []T, srcKeys []uint64, dst []T, dstKeys []uint64, shift uint) bool {
	var count [histSize8]int
	for _, k := range srcKeys {
		count[uint8(k>>shift)]++
	}
	if count[uint8(srcKeys[0]>>shift)] == len(srcKeys) {
		return false
	}

	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	src = src[:len(srcKeys)]
	dst = dst[:len(srcKeys)]
	dstKeys = dstKeys[:len(srcKeys)]
	for i, k := range srcKeys {
		d := uint8(k >> shift)
		j := count[d]
		dst[j] = src[i]
		dstKeys[j] = k
		count[d]++
	}
	return true
}

// SortRadixable128 sorts data in place by 128-bit projected keys. Like
// SortRadixable it is stable and projects each element once.
func SortRadixable128[T radix.Radixable128](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	keys := make([]radix.Uint128, n)
	for i := range data {
		keys[i] = data[i].RadixKey()
	}
	if n <= sortInsertionThreshold {
		insertionSortByKeys128(data, keys)
		return
	}

	scratch := make([]T, n)
	scratchKeys := make([]radix.Uint128, n)
	src, srcKeys := data, keys
	dst, dstKeys := scratch, scratchKeys
	swapped := false
	for digit := range radix.KeyWidth[radix.Uint128]() / radixBits {
		if keyedPass128(src, srcKeys, dst, dstKeys, digit) {
			src, dst = dst, src
			srcKeys, dstKeys = dstKeys, srcKeys
			swapped = !swapped
		}
	}
	if swapped {
		copy(data, src)
	}
}

func keyedPass128[T any](src []T, srcKeys []radix.Uint128, dst []T, dstKeys []radix.Uint128, digit int) bool {
	var count [histSize8]int
	for _, k := range srcKeys {
		count[k.Byte(digit)]++
	}
	if count[srcKeys[0].Byte(digit)] == len(srcKeys) {
		return false
	}

	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	src = src[:len(srcKeys)]
	dst = dst[:len(srcKeys)]
	dstKeys = dstKeys[:len(srcKeys)]
	for i, k := range srcKeys {
		d := k.Byte(digit)
		j := count[d]
		dst[j] = src[i]
		dstKeys[j] = k
		count[d]++
	}
	return true
}
