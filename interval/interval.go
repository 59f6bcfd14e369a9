package interval

import "fmt"

const (
	// defaultMaxFanout is the maximum number of entries that a node can store
	// before it is split.
	//
	// This is a performance tweakable that can be adjusted based on the
	// expected number of intervals.
	defaultMaxFanout = 16

	// defaultMinFanout is the minimum number of entries that a non-root node
	// must store. Nodes that drop below it during removal are dissolved and
	// their entries reinserted.
	defaultMinFanout = 6
)

// Interval represents the closed interval [Low, High].
type Interval struct {
	Low  int
	High int
}

// Valid reports whether Low <= High.
func (i Interval) Valid() bool {
	return i.Low <= i.High
}

// Envelope returns the bounding envelope of the interval.
func (i Interval) Envelope() Envelope {
	return Envelope{Min: i.Low, Max: i.High}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d]", i.Low, i.High)
}

// Envelope is the minimum bounding range covering an interval or a subtree.
type Envelope struct {
	Min int
	Max int
}

// Contains reports whether o lies entirely inside e.
func (e Envelope) Contains(o Envelope) bool {
	return e.Min <= o.Min && o.Max <= e.Max
}

// Intersects reports whether e and o share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	return e.Min <= o.Max && o.Min <= e.Max
}

// Union returns the smallest envelope covering both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	return Envelope{Min: min(e.Min, o.Min), Max: max(e.Max, o.Max)}
}

// Length is the one-dimensional area of the envelope.
func (e Envelope) Length() int {
	return e.Max - e.Min
}

// enlargement returns how much e has to grow to also cover o.
func (e Envelope) enlargement(o Envelope) int {
	return e.Union(o).Length() - e.Length()
}

func (e Envelope) String() string {
	return fmt.Sprintf("[%d,%d]", e.Min, e.Max)
}

// Fanout bounds the number of entries per node.
type Fanout struct {
	Min int
	Max int
}

// DefaultFanout is the fanout used by [New] and [BulkLoad].
var DefaultFanout = Fanout{Min: defaultMinFanout, Max: defaultMaxFanout}

func (f Fanout) validate() error {
	if f.Min < 1 || f.Min > f.Max/2 {
		return ErrInvalidFanout
	}

	return nil
}
