package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/crystalix007/range-rtree/interval"
	"github.com/crystalix007/range-rtree/internal/baseline"
	"github.com/crystalix007/range-rtree/internal/rangegen"
)

// Config controls a benchmark run.
type Config struct {
	rangegen.Params `yaml:",inline"`

	InsertSeed  uint64 `yaml:"insert_seed"`
	LookupSeed  uint64 `yaml:"lookup_seed"`
	Iterations  int    `yaml:"iterations"`
	Readers     int    `yaml:"readers"`
	MinFanout   int    `yaml:"min_fanout"`
	MaxFanout   int    `yaml:"max_fanout"`
	BTreeDegree int    `yaml:"btree_degree"`
}

// DefaultConfig runs the standard list vs. rtree comparison.
var DefaultConfig = Config{
	Params:      rangegen.DefaultParams,
	InsertSeed:  rangegen.DefaultInsertSeed,
	LookupSeed:  rangegen.DefaultLookupSeed,
	Iterations:  10,
	Readers:     4,
	MinFanout:   interval.DefaultFanout.Min,
	MaxFanout:   interval.DefaultFanout.Max,
	BTreeDegree: baseline.DefaultDegree,
}

// LoadConfig reads filename over a copy of DefaultConfig. A missing file is
// not an error.
func LoadConfig(filename string) (*Config, error) {
	c := DefaultConfig
	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}
	return &c, nil
}

// Fanout returns the tree node bounds.
func (c *Config) Fanout() interval.Fanout {
	return interval.Fanout{Min: c.MinFanout, Max: c.MaxFanout}
}

func (c *Config) validate() error {
	switch {
	case c.Count <= 0:
		return errors.Errorf("count must be positive, got %d", c.Count)
	case c.MaxStart <= 0:
		return errors.Errorf("max_start must be positive, got %d", c.MaxStart)
	case c.MaxSize < 0:
		return errors.Errorf("max_size must not be negative, got %d", c.MaxSize)
	case c.Iterations <= 0:
		return errors.Errorf("iterations must be positive, got %d", c.Iterations)
	case c.Readers < 0:
		return errors.Errorf("readers must not be negative, got %d", c.Readers)
	case c.BTreeDegree < 2:
		return errors.Errorf("btree_degree must be at least 2, got %d", c.BTreeDegree)
	}

	if _, err := interval.NewWithFanout(c.Fanout()); err != nil {
		return errors.Wrapf(err, "fanout %d..%d", c.MinFanout, c.MaxFanout)
	}

	return nil
}
