package baseline

import (
	"iter"

	"github.com/google/btree"

	"github.com/crystalix007/range-rtree/interval"
)

// DefaultDegree is the btree degree used when none is configured.
const DefaultDegree = 32

// sortedItem orders intervals by low bound, then high bound. seq keeps equal
// intervals apart so that duplicates can be stored.
type sortedItem struct {
	interval.Interval
	seq uint64
}

func lessSorted(a, b sortedItem) bool {
	if a.Low != b.Low {
		return a.Low < b.Low
	}

	if a.High != b.High {
		return a.High < b.High
	}

	return a.seq < b.seq
}

// Sorted keeps intervals in a btree ordered by low bound. Containment queries
// stop as soon as the low bound passes the target's.
type Sorted struct {
	tree *btree.BTreeG[sortedItem]
	seq  uint64
}

// NewSorted creates an empty btree of the given degree.
func NewSorted(degree int) *Sorted {
	return &Sorted{tree: btree.NewG(degree, lessSorted)}
}

// Insert adds item. Duplicates are kept.
func (s *Sorted) Insert(item interval.Interval) error {
	if err := interval.Check(item); err != nil {
		return err
	}

	s.seq++
	s.tree.ReplaceOrInsert(sortedItem{Interval: item, seq: s.seq})

	return nil
}

// Remove deletes one interval equal to item.
func (s *Sorted) Remove(item interval.Interval) bool {
	var (
		found sortedItem
		ok    bool
	)

	// Sequence numbers start at 1, so seq 0 sorts before every copy of item.
	s.tree.AscendGreaterOrEqual(sortedItem{Interval: item}, func(i sortedItem) bool {
		found, ok = i, i.Interval == item
		return false
	})

	if !ok {
		return false
	}

	s.tree.Delete(found)

	return true
}

// Len returns the number of stored intervals.
func (s *Sorted) Len() int {
	return s.tree.Len()
}

// Query yields every interval accepted by sel in ascending order. Only
// ShouldAccept is consulted.
func (s *Sorted) Query(sel interval.Selector) iter.Seq[interval.Interval] {
	return func(yield func(interval.Interval) bool) {
		s.tree.Ascend(func(i sortedItem) bool {
			return !sel.ShouldAccept(i.Interval) || yield(i.Interval)
		})
	}
}

// Containing yields every stored interval containing target.
func (s *Sorted) Containing(target interval.Interval) iter.Seq[interval.Interval] {
	return func(yield func(interval.Interval) bool) {
		s.tree.Ascend(func(i sortedItem) bool {
			if i.Low > target.Low {
				return false
			}

			return i.High < target.High || yield(i.Interval)
		})
	}
}
