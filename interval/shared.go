package interval

import (
	"iter"
	"sync"
)

// Shared guards a [Tree] for one writer and many readers at a time.
type Shared struct {
	mu     sync.RWMutex
	tree   *Tree
	fanout Fanout
}

// NewShared wraps tree. The caller must not use tree directly afterwards.
func NewShared(tree *Tree) *Shared {
	return &Shared{tree: tree, fanout: tree.Fanout()}
}

// Insert adds item under the write lock.
func (s *Shared) Insert(item Interval) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Insert(item)
}

// Remove deletes one interval equal to item under the write lock.
func (s *Shared) Remove(item Interval) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Remove(item)
}

// Len returns the number of stored intervals.
func (s *Shared) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Len()
}

// Query holds the read lock while the returned sequence is being ranged over,
// so the loop body must not call Insert, Remove or Reload on s.
func (s *Shared) Query(sel Selector) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		s.tree.Query(sel)(yield)
	}
}

// Reload bulk loads items into a new tree and swaps it in. Readers see either
// the old or the new tree, never a partial one. On error s is unchanged.
func (s *Shared) Reload(items []Interval) error {
	tree, err := BulkLoadWithFanout(s.fanout, items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	return nil
}
