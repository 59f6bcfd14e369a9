package interval

// Selector drives a [Tree.Query].
//
// ShouldDescendInto prunes the search: a subtree is only expanded when it
// returns true for the subtree's envelope. ShouldAccept decides whether a
// stored interval is part of the result. A selector must never reject a
// subtree that could hold an accepted interval.
type Selector interface {
	ShouldDescendInto(envelope Envelope) bool
	ShouldAccept(item Interval) bool
}

// SelectorFuncs is a [Selector] made of two closures. A nil Descend expands
// every subtree, a nil Accept accepts every interval.
type SelectorFuncs struct {
	Descend func(envelope Envelope) bool
	Accept  func(item Interval) bool
}

var _ Selector = SelectorFuncs{}

// ShouldDescendInto implements [Selector].
func (s SelectorFuncs) ShouldDescendInto(envelope Envelope) bool {
	return s.Descend == nil || s.Descend(envelope)
}

// ShouldAccept implements [Selector].
func (s SelectorFuncs) ShouldAccept(item Interval) bool {
	return s.Accept == nil || s.Accept(item)
}

// Everything selects every stored interval.
var Everything Selector = SelectorFuncs{}

// containing selects stored intervals that fully contain the target.
type containing struct {
	target Envelope
}

// Containing returns a selector for every stored interval Y with
// Y.Low <= target.Low and Y.High >= target.High.
//
// This is containment of the target by the stored interval, not overlap: a
// stored [10,20] is returned for target [11,12] but not for [15,25].
func Containing(target Interval) Selector {
	return containing{target: target.Envelope()}
}

func (c containing) ShouldDescendInto(envelope Envelope) bool {
	return envelope.Contains(c.target)
}

func (c containing) ShouldAccept(item Interval) bool {
	return item.Envelope().Contains(c.target)
}

type intersecting struct {
	target Envelope
}

// Intersecting returns a selector for every stored interval sharing at least
// one point with target.
func Intersecting(target Interval) Selector {
	return intersecting{target: target.Envelope()}
}

func (i intersecting) ShouldDescendInto(envelope Envelope) bool {
	return envelope.Intersects(i.target)
}

func (i intersecting) ShouldAccept(item Interval) bool {
	return item.Envelope().Intersects(i.target)
}

type within struct {
	target Envelope
}

// Within returns a selector for every stored interval lying inside target.
func Within(target Interval) Selector {
	return within{target: target.Envelope()}
}

func (w within) ShouldDescendInto(envelope Envelope) bool {
	return envelope.Intersects(w.target)
}

func (w within) ShouldAccept(item Interval) bool {
	return w.target.Contains(item.Envelope())
}
