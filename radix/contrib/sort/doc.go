// Package sort provides non-comparison sorts for fixed-width unsigned keys.
//
// # Algorithms
//
// The kernel is chosen once per call from the key width of the element type:
//   - 16-bit keys: counting sort over a 65,536-bucket histogram
//     (CountingSortU16). O(N + 2^16) time, one histogram allocation.
//   - 8-bit keys: counting sort over 256 buckets (CountingSortU8).
//   - 32- and 64-bit keys: LSD radix sort, one 8-bit digit per pass, with
//     passes skipped when every key shares the digit (RadixSort).
//   - Projected keys (Radixable, Radixable128): stable LSD radix sort that
//     moves elements along with their projected keys (SortRadixable).
//
// Small inputs (64 elements or fewer) go through insertion sort in the radix
// kernels. The counting kernels have no small-input cutoff besides N < 2.
//
// # Example Usage
//
//	import "github.com/lakwet/voracious-sort-sub001/radix/contrib/sort"
//
//	func ProcessPorts(ports []uint16) {
//	    sort.Sort(ports) // in place, ascending
//	}
//
// # Stability
//
// The counting kernels rebuild the output from the histogram, so they only
// serve identity keys, where equal keys are indistinguishable values.
// SortRadixable and SortRadixable128 are stable for any projection.
//
// # Tuning
//
// The counting and emission passes are unrolled by radix.BlockSize()
// (1, 4 or 8), detected from CPU features and overridable with the
// VSORT_BLOCK and VSORT_NO_UNROLL environment variables. Output does not
// depend on the block size.
package sort
