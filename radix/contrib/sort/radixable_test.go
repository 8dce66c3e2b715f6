package sort_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lakwet/voracious-sort-sub001/radix"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/sort"
)

// record projects onto Port. Seq tells apart records with equal keys.
type record struct {
	Port uint16
	Seq  int
}

func (r record) RadixKey() uint16 { return r.Port }

// wideRecord projects onto a 64-bit key.
type wideRecord struct {
	ID  uint64
	Seq int
}

func (r wideRecord) RadixKey() uint64 { return r.ID }

// flow projects onto a 128-bit key.
type flow struct {
	Key radix.Uint128
	Seq int
}

func (f flow) RadixKey() radix.Uint128 { return f.Key }

func TestSortRadixableStable(t *testing.T) {
	for _, n := range []int{0, 1, 5, 64, 65, 10000} {
		r := rand.New(rand.NewPCG(uint64(n), 1))
		data := make([]record, n)
		for i := range data {
			data[i] = record{Port: uint16(r.IntN(50)), Seq: i}
		}
		want := slices.Clone(data)
		slices.SortStableFunc(want, func(a, b record) int { return int(a.Port) - int(b.Port) })

		sort.SortRadixable[record, uint16](data)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("n=%d: SortRadixable not stable (-want +got):\n%s", n, diff)
		}
		if !sort.IsSortedRadixable[record, uint16](data) {
			t.Errorf("n=%d: IsSortedRadixable = false", n)
		}
	}
}

func TestSortRadixableWide(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 3))
	data := make([]wideRecord, 5000)
	for i := range data {
		// Few distinct IDs spread over high bytes.
		data[i] = wideRecord{ID: uint64(r.IntN(16)) << 52, Seq: i}
	}
	want := slices.Clone(data)
	slices.SortStableFunc(want, func(a, b wideRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	sort.SortRadixable[wideRecord, uint64](data)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SortRadixable (-want +got):\n%s", diff)
	}
}

func TestSortRadixable128(t *testing.T) {
	for _, n := range []int{0, 1, 30, 1000} {
		r := rand.New(rand.NewPCG(uint64(n), 9))
		data := make([]flow, n)
		for i := range data {
			data[i] = flow{Key: radix.Uint128{Hi: uint64(r.IntN(4)), Lo: uint64(r.IntN(8)) << 60}, Seq: i}
		}
		want := slices.Clone(data)
		slices.SortStableFunc(want, func(a, b flow) int { return a.Key.Compare(b.Key) })

		sort.SortRadixable128(data)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("n=%d: SortRadixable128 (-want +got):\n%s", n, diff)
		}
	}
}

func TestSortRadixable128Identity(t *testing.T) {
	data := []radix.Uint128{{Hi: 1, Lo: 0}, {Hi: 0, Lo: ^uint64(0)}, {Hi: 0, Lo: 0}}
	sort.SortRadixable128(data)
	want := []radix.Uint128{{Hi: 0, Lo: 0}, {Hi: 0, Lo: ^uint64(0)}, {Hi: 1, Lo: 0}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SortRadixable128 (-want +got):\n%s", diff)
	}
}
