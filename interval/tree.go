package interval

import "iter"

// Tree is a balanced R-tree over one-dimensional intervals.
//
// All leaves sit at the same depth. Every node except the root holds between
// Fanout.Min and Fanout.Max entries. A Tree is not safe for concurrent use;
// see [Shared].
type Tree struct {
	root   *node
	size   int
	height int
	fanout Fanout
}

// node is either a leaf holding intervals, or an internal node holding child
// nodes. Every entry carries the envelope of what it points at.
type node struct {
	leaf    bool
	entries []entry
}

// entry is an interval under a leaf, or a child under an internal node.
type entry struct {
	envelope Envelope
	item     Interval
	child    *node
}

// step records which entry of node was followed while descending.
type step struct {
	node  *node
	index int
}

// New creates an empty tree with [DefaultFanout].
func New() *Tree {
	return newTree(DefaultFanout)
}

// NewWithFanout creates an empty tree with the given node size bounds.
func NewWithFanout(fanout Fanout) (*Tree, error) {
	if err := fanout.validate(); err != nil {
		return nil, err
	}

	return newTree(fanout), nil
}

func newTree(fanout Fanout) *Tree {
	return &Tree{
		root:   &node{leaf: true},
		height: 1,
		fanout: fanout,
	}
}

// Len returns the number of stored intervals.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of levels in the tree. An empty tree has height 1.
func (t *Tree) Height() int {
	return t.height
}

// Fanout returns the node size bounds of the tree.
func (t *Tree) Fanout() Fanout {
	return t.fanout
}

// Bounds returns the envelope covering every stored interval, and false when
// the tree is empty.
func (t *Tree) Bounds() (Envelope, bool) {
	if len(t.root.entries) == 0 {
		return Envelope{}, false
	}

	return t.root.bounds(), true
}

// Insert adds item to the tree. Intervals with Low > High are rejected with an
// *InvalidInputError and the tree is left unchanged.
func (t *Tree) Insert(item Interval) error {
	if err := Check(item); err != nil {
		return err
	}

	t.insert(entry{envelope: item.Envelope(), item: item}, 0)
	t.size++

	return nil
}

// Query returns the stored intervals picked by sel, walking the tree depth
// first. Each range over the returned sequence starts a fresh traversal. The
// tree must not be modified while a traversal is in progress.
func (t *Tree) Query(sel Selector) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		t.root.query(sel, yield)
	}
}

// All returns every stored interval.
func (t *Tree) All() iter.Seq[Interval] {
	return t.Query(Everything)
}

func (n *node) query(sel Selector, yield func(Interval) bool) bool {
	for _, e := range n.entries {
		if n.leaf {
			if sel.ShouldAccept(e.item) && !yield(e.item) {
				return false
			}

			continue
		}

		if sel.ShouldDescendInto(e.envelope) && !e.child.query(sel, yield) {
			return false
		}
	}

	return true
}

// bounds returns the envelope of all entries. The node must not be empty.
func (n *node) bounds() Envelope {
	envelope := n.entries[0].envelope

	for _, e := range n.entries[1:] {
		envelope = envelope.Union(e.envelope)
	}

	return envelope
}

// insert places e into a node at the given level, counting leaves as level 0,
// then enlarges envelopes and splits overflowing nodes on the way back up.
func (t *Tree) insert(e entry, level int) {
	path := t.choosePath(e.envelope, level)

	target := t.root
	if len(path) > 0 {
		last := path[len(path)-1]
		target = last.node.entries[last.index].child
	}

	target.entries = append(target.entries, e)

	var sibling *node
	if len(target.entries) > t.fanout.Max {
		sibling = t.split(target)
	}

	for i := len(path) - 1; i >= 0; i-- {
		parent := path[i].node
		parentEntry := &parent.entries[path[i].index]

		if sibling == nil {
			parentEntry.envelope = parentEntry.envelope.Union(e.envelope)
			continue
		}

		// The child was split, so its envelope may have shrunk.
		parentEntry.envelope = parentEntry.child.bounds()
		parent.entries = append(parent.entries, entry{envelope: sibling.bounds(), child: sibling})

		sibling = nil
		if len(parent.entries) > t.fanout.Max {
			sibling = t.split(parent)
		}
	}

	if sibling != nil {
		t.growRoot(sibling)
	}
}

// choosePath descends from the root to the node at level, following at each
// step the child whose envelope grows least to cover envelope.
func (t *Tree) choosePath(envelope Envelope, level int) []step {
	depth := t.height - 1 - level
	path := make([]step, 0, depth)

	n := t.root
	for range depth {
		index := chooseSubtree(n, envelope)
		path = append(path, step{node: n, index: index})
		n = n.entries[index].child
	}

	return path
}

// chooseSubtree picks the entry needing the least enlargement. Ties go to the
// smaller resulting envelope, then to the first entry.
func chooseSubtree(n *node, envelope Envelope) int {
	best := 0
	bestGrowth := n.entries[0].envelope.enlargement(envelope)
	bestLength := n.entries[0].envelope.Union(envelope).Length()

	for i := 1; i < len(n.entries); i++ {
		growth := n.entries[i].envelope.enlargement(envelope)
		length := n.entries[i].envelope.Union(envelope).Length()

		if growth < bestGrowth || (growth == bestGrowth && length < bestLength) {
			best, bestGrowth, bestLength = i, growth, length
		}
	}

	return best
}

// growRoot puts the old root and its split sibling under a new root.
func (t *Tree) growRoot(sibling *node) {
	old := t.root

	t.root = &node{
		entries: []entry{
			{envelope: old.bounds(), child: old},
			{envelope: sibling.bounds(), child: sibling},
		},
	}
	t.height++
}
