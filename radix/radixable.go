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

package radix

// Radixable is implemented by element types that sort by a key of up to 64
// bits. RadixKey must be total and pure: equal elements return equal keys, and
// every call on the same value returns the same key.
type Radixable[K Unsigned] interface {
	RadixKey() K
}

// Radixable128 is implemented by element types that sort by a 128-bit key.
type Radixable128 interface {
	RadixKey() Uint128
}

// WidthOf returns the key width in bits of element type T.
func WidthOf[T Radixable[K], K Unsigned]() int {
	return KeyWidth[K]()
}
