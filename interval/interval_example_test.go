package interval_test

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/crystalix007/range-rtree/interval"
)

func byBounds(a, b interval.Interval) int {
	if c := cmp.Compare(a.Low, b.Low); c != 0 {
		return c
	}

	return cmp.Compare(a.High, b.High)
}

func Example() {
	tree := interval.New()

	for _, item := range []interval.Interval{
		{Low: 10, High: 20},
		{Low: 15, High: 25},
		{Low: 5, High: 12},
	} {
		if err := tree.Insert(item); err != nil {
			fmt.Println(err)
			return
		}
	}

	// Query order follows the tree layout, so sort before printing.
	containing := slices.SortedFunc(tree.Query(interval.Containing(interval.Interval{Low: 11, High: 12})), byBounds)
	fmt.Printf("Containing [11,12]: %v\n", containing)

	err := tree.Insert(interval.Interval{Low: 30, High: 10})
	fmt.Println(err)
	fmt.Printf("Stored: %d\n", tree.Len())

	// Output:
	// Containing [11,12]: [[5,12] [10,20]]
	// interval low bound exceeds high bound: [30,10]
	// Stored: 3
}

func ExampleBulkLoad() {
	items := make([]interval.Interval, 0, 100)
	for i := range 100 {
		items = append(items, interval.Interval{Low: i * 10, High: i*10 + 15})
	}

	tree, err := interval.BulkLoad(items)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Height: %d\n", tree.Height())

	found := slices.SortedFunc(tree.Query(interval.Containing(interval.Interval{Low: 502, High: 508})), byBounds)
	fmt.Printf("Containing [502,508]: %v\n", found)

	// Output:
	// Height: 2
	// Containing [502,508]: [[500,515]]
}
