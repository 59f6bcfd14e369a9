package interval_test

import (
	"testing"

	"github.com/crystalix007/range-rtree/internal/baseline"
	"github.com/crystalix007/range-rtree/internal/rangegen"
	"github.com/crystalix007/range-rtree/interval"
)

func insertRanges() []interval.Interval {
	return rangegen.Generate(rangegen.DefaultInsertSeed, rangegen.DefaultParams)
}

func lookupRanges() []interval.Interval {
	return rangegen.Generate(rangegen.DefaultLookupSeed, rangegen.DefaultParams)
}

func BenchmarkTree_Insert(b *testing.B) {
	ranges := insertRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := interval.New()
		for _, r := range ranges {
			if err := tree.Insert(r); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkBulkLoad(b *testing.B) {
	ranges := insertRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := interval.BulkLoad(ranges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTree_Lookup(b *testing.B) {
	tree := interval.New()
	for _, r := range insertRanges() {
		if err := tree.Insert(r); err != nil {
			b.Fatal(err)
		}
	}

	lookups := lookupRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range lookups {
			for range tree.Query(interval.Containing(r)) {
			}
		}
	}
}

func BenchmarkList_Insert(b *testing.B) {
	ranges := insertRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list := baseline.NewList()
		for _, r := range ranges {
			if err := list.Insert(r); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkList_BulkLoad(b *testing.B) {
	ranges := insertRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := baseline.NewListFrom(ranges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList_Lookup(b *testing.B) {
	list, err := baseline.NewListFrom(insertRanges())
	if err != nil {
		b.Fatal(err)
	}

	lookups := lookupRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range lookups {
			list.Find(interval.Containing(r))
		}
	}
}

func BenchmarkSorted_Lookup(b *testing.B) {
	sorted := baseline.NewSorted(baseline.DefaultDegree)
	for _, r := range insertRanges() {
		if err := sorted.Insert(r); err != nil {
			b.Fatal(err)
		}
	}

	lookups := lookupRanges()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range lookups {
			for range sorted.Containing(r) {
			}
		}
	}
}
