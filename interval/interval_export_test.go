package interval

import "github.com/pkg/errors"

const (
	// DefaultMaxFanout re-exports [defaultMaxFanout] for testing purposes.
	DefaultMaxFanout = defaultMaxFanout

	// DefaultMinFanout re-exports [defaultMinFanout] for testing purposes.
	DefaultMinFanout = defaultMinFanout
)

// CheckInvariants walks the whole tree and reports the first broken
// structural invariant:
//
//   - every leaf sits at depth Height()-1
//   - no node holds more than Fanout.Max entries
//   - no node except the root holds fewer than Fanout.Min entries
//   - an internal root has at least two children
//   - every cached envelope is the exact union of what it covers
//   - Len() matches the number of stored intervals
func (t *Tree) CheckInvariants() error {
	count, err := t.checkNode(t.root, 0)
	if err != nil {
		return err
	}

	if count != t.size {
		return errors.Errorf("tree holds %d intervals, Len reports %d", count, t.size)
	}

	return nil
}

func (t *Tree) checkNode(n *node, depth int) (int, error) {
	if len(n.entries) > t.fanout.Max {
		return 0, errors.Errorf("node at depth %d has %d entries, max is %d", depth, len(n.entries), t.fanout.Max)
	}

	if depth > 0 && len(n.entries) < t.fanout.Min {
		return 0, errors.Errorf("node at depth %d has %d entries, min is %d", depth, len(n.entries), t.fanout.Min)
	}

	if n.leaf {
		if depth != t.height-1 {
			return 0, errors.Errorf("leaf at depth %d, height is %d", depth, t.height)
		}

		for _, e := range n.entries {
			if e.envelope != e.item.Envelope() {
				return 0, errors.Errorf("leaf entry %s cached as %s", e.item, e.envelope)
			}
		}

		return len(n.entries), nil
	}

	if depth >= t.height-1 {
		return 0, errors.Errorf("internal node at depth %d, height is %d", depth, t.height)
	}

	if depth == 0 && len(n.entries) < 2 {
		return 0, errors.Errorf("internal root has %d children", len(n.entries))
	}

	total := 0

	for _, e := range n.entries {
		if e.child == nil {
			return 0, errors.Errorf("internal entry at depth %d has no child", depth)
		}

		count, err := t.checkNode(e.child, depth+1)
		if err != nil {
			return 0, err
		}

		if bounds := e.child.bounds(); e.envelope != bounds {
			return 0, errors.Errorf("entry at depth %d cached as %s, child covers %s", depth, e.envelope, bounds)
		}

		total += count
	}

	return total, nil
}

// LeafSizes returns the number of entries of every leaf, left to right.
func (t *Tree) LeafSizes() []int {
	var sizes []int

	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf {
			sizes = append(sizes, len(n.entries))
			return
		}

		for _, e := range n.entries {
			walk(e.child)
		}
	}
	walk(t.root)

	return sizes
}
