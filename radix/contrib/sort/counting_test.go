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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

var blockSizes = []int{radix.BlockScalar, radix.BlockQuad, radix.BlockOct}

func TestCountingSortU16Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []uint16
		want  []uint16
	}{
		{"empty", []uint16{}, []uint16{}},
		{"single", []uint16{42}, []uint16{42}},
		{"three", []uint16{3, 1, 2}, []uint16{1, 2, 3}},
		{"all_equal", []uint16{5, 5, 5, 5}, []uint16{5, 5, 5, 5}},
		{"extremes", []uint16{65535, 0, 32768, 1, 65534}, []uint16{0, 1, 32768, 65534, 65535}},
		{"runs", []uint16{4, 4, 4, 3, 3, 2, 2, 2, 2, 1}, []uint16{1, 2, 2, 2, 2, 3, 3, 4, 4, 4}},
	}

	for _, block := range blockSizes {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data := slices.Clone(tt.input)
				countingSortU16(data, block)
				if diff := cmp.Diff(tt.want, data); diff != "" {
					t.Errorf("block %d (-want +got):\n%s", block, diff)
				}
			})
		}
	}
}

func TestCountingSortU16Nil(t *testing.T) {
	var data []uint16
	CountingSortU16(data)
	if data != nil {
		t.Errorf("CountingSortU16(nil) = %v, want nil", data)
	}
}

// TestCountingSortU16BlockIndependence checks that every block size yields the
// same output, including lengths that leave a tail after the last block.
func TestCountingSortU16BlockIndependence(t *testing.T) {
	sizes := []int{2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 100, 1000, 65537}
	for _, n := range sizes {
		ref := make([]uint16, n)
		for i := range ref {
			ref[i] = uint16(rand.Intn(1 << 16))
		}

		want := slices.Clone(ref)
		countingSortU16(want, radix.BlockScalar)
		for _, block := range blockSizes[1:] {
			data := slices.Clone(ref)
			countingSortU16(data, block)
			if !slices.Equal(data, want) {
				t.Errorf("n=%d: block %d output differs from block 1", n, block)
			}
		}
	}
}

func TestCountingSortU16MatchesStdlib(t *testing.T) {
	for _, n := range []int{10, 1000, 100000} {
		data := make([]uint16, n)
		for i := range data {
			data[i] = uint16(rand.Intn(1 << 16))
		}
		want := slices.Clone(data)
		slices.Sort(want)

		CountingSortU16(data)
		if !slices.Equal(data, want) {
			t.Errorf("CountingSortU16 n=%d does not match slices.Sort", n)
		}
	}
}

func TestCountU16Histogram(t *testing.T) {
	data := []uint16{7, 7, 0, 65535, 7, 1, 1, 0, 9, 9, 9}
	for _, block := range blockSizes {
		counts := new([histSize16]uint)
		countU16(data, counts, block)

		var total uint
		for _, c := range counts {
			total += c
		}
		if total != uint(len(data)) {
			t.Errorf("block %d: histogram sums to %d, want %d", block, total, len(data))
		}
		if counts[7] != 3 || counts[9] != 3 || counts[0] != 2 || counts[1] != 2 || counts[65535] != 1 {
			t.Errorf("block %d: wrong counts: 0=%d 1=%d 7=%d 9=%d 65535=%d",
				block, counts[0], counts[1], counts[7], counts[9], counts[65535])
		}
	}
}

func TestFillRun(t *testing.T) {
	for _, block := range blockSizes {
		for n := range 20 {
			run := make([]uint16, n)
			fillRun(run, 0xBEEF, block)
			for i, v := range run {
				if v != 0xBEEF {
					t.Errorf("block %d n=%d: run[%d] = %#x", block, n, i, v)
				}
			}
		}
	}
}

func TestCountingSortU8(t *testing.T) {
	for _, block := range blockSizes {
		for _, n := range []int{0, 1, 2, 9, 255, 4096} {
			data := make([]uint8, n)
			for i := range data {
				data[i] = uint8(rand.Intn(256))
			}
			want := slices.Clone(data)
			slices.Sort(want)

			countingSortU8(data, block)
			if !slices.Equal(data, want) {
				t.Errorf("countingSortU8 n=%d block %d does not match slices.Sort", n, block)
			}
		}
	}
}
