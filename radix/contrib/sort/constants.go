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

// =============================================================================
// Constants for the counting and radix kernels
// =============================================================================

// Histogram sizes, one bucket per key value.
const (
	histSize8  = 1 << 8
	histSize16 = 1 << 16
)

// radixBits is the digit width of one LSD pass.
const radixBits = 8

// sortInsertionThreshold: radix kernels use insertion sort at or below this size.
const sortInsertionThreshold = 64
