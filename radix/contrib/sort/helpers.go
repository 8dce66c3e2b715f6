package sort

import "github.com/lakwet/voracious-sort-sub001/radix"

// Helper functions shared by the radix kernels for small inputs.

// insertionSort is a simple insertion sort for small arrays.
func insertionSort[T radix.Unsigned](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// insertionSortByKeys sorts data and keys together by keys. Stable.
func insertionSortByKeys[T any](data []T, keys []uint64) {
	for i := 1; i < len(keys); i++ {
		key, elem := keys[i], data[i]
		j := i - 1
		for j >= 0 && keys[j] > key {
			keys[j+1], data[j+1] = keys[j], data[j]
			j--
		}
		keys[j+1], data[j+1] = key, elem
	}
}

// insertionSortByKeys128 is insertionSortByKeys for 128-bit keys.
func insertionSortByKeys128[T any](data []T, keys []radix.Uint128) {
	for i := 1; i < len(keys); i++ {
		key, elem := keys[i], data[i]
		j := i - 1
		for j >= 0 && key.Less(keys[j]) {
			keys[j+1], data[j+1] = keys[j], data[j]
			j--
		}
		keys[j+1], data[j+1] = key, elem
	}
}
