// Package rangegen produces reproducible batches of random intervals.
package rangegen

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/crystalix007/range-rtree/interval"
)

const (
	// DefaultInsertSeed seeds the batch that gets stored.
	DefaultInsertSeed uint64 = 31

	// DefaultLookupSeed seeds the batch used as query targets.
	DefaultLookupSeed uint64 = 64
)

// Params shapes a generated batch.
type Params struct {
	// Count is the number of intervals.
	Count int `yaml:"count"`

	// MaxStart bounds every endpoint to [0, MaxStart]. Must be positive.
	MaxStart int `yaml:"max_start"`

	// MaxSize bounds High-Low to [0, MaxSize).
	MaxSize int `yaml:"max_size"`
}

// DefaultParams generates a thousand short intervals over [0, 64000].
var DefaultParams = Params{
	Count:    1000,
	MaxStart: 64000,
	MaxSize:  64,
}

// Generate returns p.Count intervals drawn from a ChaCha8 stream keyed by
// seed. The same seed and params always give the same batch.
func Generate(seed uint64, p Params) []interval.Interval {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	rng := rand.New(rand.NewChaCha8(key))
	items := make([]interval.Interval, p.Count)

	for i := range items {
		start := rng.IntN(p.MaxStart)

		size := 0
		if p.MaxSize > 0 {
			size = rng.IntN(p.MaxSize)
		}

		items[i] = interval.Interval{
			Low:  start,
			High: min(start+size, p.MaxStart),
		}
	}

	return items
}
