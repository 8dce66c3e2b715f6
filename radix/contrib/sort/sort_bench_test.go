package sort

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

// Generate random data for benchmarks
func generateUint16(n int) []uint16 {
	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(rand.Intn(1 << 16))
	}
	return data
}

func generateUint32(n int) []uint32 {
	data := make([]uint32, n)
	for i := range data {
		data[i] = rand.Uint32()
	}
	return data
}

func generateUint64(n int) []uint64 {
	data := make([]uint64, n)
	for i := range data {
		data[i] = rand.Uint64()
	}
	return data
}

var benchSizes = []int{1000, 100000, 1000000, 10000000}

func BenchmarkCountingSortU16(b *testing.B) {
	for _, n := range benchSizes {
		for _, block := range []int{radix.BlockScalar, radix.BlockQuad, radix.BlockOct} {
			b.Run(fmt.Sprintf("n=%d/block=%d", n, block), func(b *testing.B) {
				ref := generateUint16(n)
				data := make([]uint16, n)
				b.SetBytes(int64(n) * 2)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					countingSortU16(data, block)
				}
			})
		}
	}
}

// BenchmarkCopyU16 is the memcpy floor the counting sort is measured against.
func BenchmarkCopyU16(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := generateUint16(n)
			data := make([]uint16, n)
			b.SetBytes(int64(n) * 2)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
			}
		})
	}
}

func BenchmarkStdlibSortU16(b *testing.B) {
	for _, n := range benchSizes[:3] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := generateUint16(n)
			data := make([]uint16, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				slices.Sort(data)
			}
		})
	}
}

func BenchmarkRadixSortUint32(b *testing.B) {
	for _, n := range benchSizes[:3] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := generateUint32(n)
			data := make([]uint32, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				RadixSort(data)
			}
		})
	}
}

func BenchmarkRadixSortUint64(b *testing.B) {
	for _, n := range benchSizes[:3] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := generateUint64(n)
			data := make([]uint64, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				RadixSort(data)
			}
		})
	}
}

type benchRecord struct {
	key     uint32
	payload uint32
}

func (r benchRecord) RadixKey() uint32 { return r.key }

func BenchmarkSortRadixable(b *testing.B) {
	for _, n := range benchSizes[:3] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := make([]benchRecord, n)
			for i := range ref {
				ref[i] = benchRecord{key: rand.Uint32(), payload: uint32(i)}
			}
			data := make([]benchRecord, n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				SortRadixable[benchRecord, uint32](data)
			}
		})
	}
}
