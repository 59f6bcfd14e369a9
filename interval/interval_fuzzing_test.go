package interval_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/range-rtree/internal/rangegen"
	"github.com/crystalix007/range-rtree/interval"
)

func FuzzTree(f *testing.F) {
	f.Add(uint16(100), uint64(31), int32(100), int32(120))
	f.Add(uint16(1000), uint64(64), int32(5), int32(5))
	f.Add(uint16(0), uint64(0), int32(-1), int32(1))

	f.Fuzz(func(
		t *testing.T,
		intervalCount uint16,
		seed uint64,
		targetEndpoint1 int32,
		targetEndpoint2 int32,
	) {
		intervals := rangegen.Generate(seed, rangegen.Params{
			Count:    int(intervalCount % 2048),
			MaxStart: 4096,
			MaxSize:  512,
		})

		target := sortInterval(int(targetEndpoint1), int(targetEndpoint2))

		inserted := interval.New()
		for _, item := range intervals {
			require.NoError(t, inserted.Insert(item))
		}

		loaded, err := interval.BulkLoad(intervals)
		require.NoError(t, err)

		expectedContaining := getExpected(intervals, func(item interval.Interval) bool {
			return item.Low <= target.Low && item.High >= target.High
		})

		expectedIntersecting := getExpected(intervals, func(item interval.Interval) bool {
			return item.Low <= target.High && target.Low <= item.High
		})

		for _, tree := range []*interval.Tree{inserted, loaded} {
			require.ElementsMatch(t, expectedContaining, slices.Collect(tree.Query(interval.Containing(target))))
			require.ElementsMatch(t, expectedIntersecting, slices.Collect(tree.Query(interval.Intersecting(target))))
		}

		// Removing every other interval keeps the remaining answers exact.
		var remaining []interval.Interval

		for i, item := range intervals {
			if i%2 == 0 {
				require.True(t, inserted.Remove(item))
				continue
			}

			remaining = append(remaining, item)
		}

		require.NoError(t, inserted.CheckInvariants())
		require.ElementsMatch(t, remaining, slices.Collect(inserted.All()))
	})
}

func getExpected(intervals []interval.Interval, keep func(interval.Interval) bool) []interval.Interval {
	expected := make([]interval.Interval, 0, len(intervals))

	for _, item := range intervals {
		if keep(item) {
			expected = append(expected, item)
		}
	}

	return expected
}

func sortInterval(endpoint1, endpoint2 int) interval.Interval {
	if endpoint1 < endpoint2 {
		return interval.Interval{Low: endpoint1, High: endpoint2}
	}

	return interval.Interval{Low: endpoint2, High: endpoint1}
}
