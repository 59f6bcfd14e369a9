// Package baseline holds the plain containers the interval tree is measured
// and checked against.
package baseline

import (
	"iter"
	"slices"

	"github.com/pkg/errors"

	"github.com/crystalix007/range-rtree/interval"
)

// List is an unsorted slice of intervals. Every query is a linear scan.
type List struct {
	items []interval.Interval
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// NewListFrom copies items into a new list.
func NewListFrom(items []interval.Interval) (*List, error) {
	for i, item := range items {
		if err := interval.Check(item); err != nil {
			return nil, errors.Wrapf(err, "list item %d", i)
		}
	}

	return &List{items: slices.Clone(items)}, nil
}

// Insert appends item.
func (l *List) Insert(item interval.Interval) error {
	if err := interval.Check(item); err != nil {
		return err
	}

	l.items = append(l.items, item)

	return nil
}

// Remove deletes the first interval equal to item.
func (l *List) Remove(item interval.Interval) bool {
	i := slices.Index(l.items, item)
	if i < 0 {
		return false
	}

	l.items = slices.Delete(l.items, i, i+1)

	return true
}

// Len returns the number of stored intervals.
func (l *List) Len() int {
	return len(l.items)
}

// Query yields every interval accepted by sel, in insertion order. Only
// ShouldAccept is consulted.
func (l *List) Query(sel interval.Selector) iter.Seq[interval.Interval] {
	return func(yield func(interval.Interval) bool) {
		for _, item := range l.items {
			if sel.ShouldAccept(item) && !yield(item) {
				return
			}
		}
	}
}

// Find returns the first interval accepted by sel.
func (l *List) Find(sel interval.Selector) (interval.Interval, bool) {
	for item := range l.Query(sel) {
		return item, true
	}

	return interval.Interval{}, false
}
