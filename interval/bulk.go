package interval

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// BulkLoad builds a tree with [DefaultFanout] from items in one pass.
//
// See [BulkLoadWithFanout].
func BulkLoad(items []Interval) (*Tree, error) {
	return BulkLoadWithFanout(DefaultFanout, items)
}

// BulkLoadWithFanout builds a tree from items by sorting them once and packing
// them bottom up into nodes filled close to fanout.Max, which gives a lower
// tree than repeated inserts would. If any item is invalid nothing is built
// and the returned error wraps an *InvalidInputError. items is not modified.
func BulkLoadWithFanout(fanout Fanout, items []Interval) (*Tree, error) {
	if err := fanout.validate(); err != nil {
		return nil, err
	}

	for i, item := range items {
		if err := Check(item); err != nil {
			return nil, errors.Wrapf(err, "bulk load item %d", i)
		}
	}

	t := newTree(fanout)

	if len(items) == 0 {
		return t, nil
	}

	entries := make([]entry, len(items))
	for i, item := range items {
		entries[i] = entry{envelope: item.Envelope(), item: item}
	}

	slices.SortFunc(entries, compareEntries)

	// Runs are cut from sorted input, so the envelopes of each level come out
	// ordered as well and only the leaves need sorting.
	nodes := pack(entries, fanout, true)
	for len(nodes) > 1 {
		parents := make([]entry, len(nodes))
		for i, n := range nodes {
			parents[i] = entry{envelope: n.bounds(), child: n}
		}

		nodes = pack(parents, fanout, false)
		t.height++
	}

	t.root = nodes[0]
	t.size = len(items)

	return t, nil
}

// pack cuts entries into ceil(n/fanout.Max) runs of near equal length and
// makes a node of each. With more than one run every run holds at least
// fanout.Max/2 entries, hence at least fanout.Min.
func pack(entries []entry, fanout Fanout, leaf bool) []*node {
	count := (len(entries) + fanout.Max - 1) / fanout.Max
	nodes := make([]*node, 0, count)

	for i := range count {
		lo := i * len(entries) / count
		hi := (i + 1) * len(entries) / count

		nodes = append(nodes, &node{
			leaf:    leaf,
			entries: slices.Clone(entries[lo:hi]),
		})
	}

	return nodes
}

func compareEntries(a, b entry) int {
	if c := cmp.Compare(a.envelope.Min, b.envelope.Min); c != 0 {
		return c
	}

	return cmp.Compare(a.envelope.Max, b.envelope.Max)
}
