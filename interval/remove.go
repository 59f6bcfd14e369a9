package interval

import "slices"

// Remove deletes one stored interval equal to item and reports whether one was
// found.
//
// Nodes left with fewer than Fanout.Min entries are dissolved and their
// entries reinserted at their original level. A root left with a single child
// is replaced by that child.
func (t *Tree) Remove(item Interval) bool {
	if !item.Valid() {
		return false
	}

	path, ok := findEntry(t.root, item, nil)
	if !ok {
		return false
	}

	leaf := path[len(path)-1]
	leaf.node.entries = slices.Delete(leaf.node.entries, leaf.index, leaf.index+1)
	t.size--

	t.condense(path)

	for !t.root.leaf && len(t.root.entries) == 1 {
		t.root = t.root.entries[0].child
		t.height--
	}

	return true
}

// findEntry returns the path from n to a leaf entry equal to item. Only
// subtrees whose envelope contains item are searched.
func findEntry(n *node, item Interval, path []step) ([]step, bool) {
	envelope := item.Envelope()

	for i, e := range n.entries {
		if n.leaf {
			if e.item == item {
				return append(path, step{node: n, index: i}), true
			}

			continue
		}

		if !e.envelope.Contains(envelope) {
			continue
		}

		if found, ok := findEntry(e.child, item, append(path, step{node: n, index: i})); ok {
			return found, true
		}
	}

	return nil, false
}

// orphans are the entries of a dissolved node, with the level they belong on.
type orphans struct {
	entries []entry
	level   int
}

// condense walks path bottom up after a leaf lost an entry. Underflowing nodes
// are unlinked from their parent, the others get a tight envelope. The
// entries of unlinked nodes are then reinserted.
func (t *Tree) condense(path []step) {
	var dissolved []orphans

	for i := len(path) - 1; i > 0; i-- {
		n := path[i].node
		parent := path[i-1]

		if len(n.entries) < t.fanout.Min {
			parent.node.entries = slices.Delete(parent.node.entries, parent.index, parent.index+1)
			dissolved = append(dissolved, orphans{entries: n.entries, level: len(path) - 1 - i})

			continue
		}

		parent.node.entries[parent.index].envelope = n.bounds()
	}

	for _, o := range dissolved {
		for _, e := range o.entries {
			t.insert(e, o.level)
		}
	}
}
