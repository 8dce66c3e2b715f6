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

import (
	"unsafe"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

// Sort sorts data in place using the best kernel for the key width of T:
//   - 8 bits: CountingSortU8
//   - 16 bits: CountingSortU16
//   - 32 and 64 bits: RadixSort
//
// Named types such as `type Port uint16` take the same path as their
// underlying type. For element types that project to a key, use
// SortRadixable.
func Sort[T radix.Unsigned](data []T) {
	if len(data) <= 1 {
		return
	}

	switch radix.KeyWidth[T]() {
	case 8:
		CountingSortU8(reinterpret[uint8](data))
	case 16:
		CountingSortU16(reinterpret[uint16](data))
	case 32:
		RadixSort(reinterpret[uint32](data))
	case 64:
		RadixSort(reinterpret[uint64](data))
	}
}

// reinterpret views data as a slice of U. T and U must have the same size,
// which holds for a T and U of equal key width.
func reinterpret[U, T radix.Unsigned](data []T) []U {
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T radix.Unsigned](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedRadixable reports whether data is in non-decreasing key order.
func IsSortedRadixable[T radix.Radixable[K], K radix.Unsigned](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i].RadixKey() < data[i-1].RadixKey() {
			return false
		}
	}
	return true
}
