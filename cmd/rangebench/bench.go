package main

import (
	"iter"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"

	"github.com/crystalix007/range-rtree/interval"
	"github.com/crystalix007/range-rtree/internal/baseline"
	"github.com/crystalix007/range-rtree/internal/logger"
	"github.com/crystalix007/range-rtree/internal/rangegen"
)

var (
	// errMismatch signals that two implementations disagree on a lookup
	errMismatch = errors.New("lookup results differ between implementations")

	// errNotStored signals that an inserted interval could not be removed
	errNotStored = errors.New("inserted interval not found")
)

// container is what the insert and remove phases fill and drain.
type container interface {
	Insert(item interval.Interval) error
	Remove(item interval.Interval) bool
}

// countFunc returns how many stored intervals match target.
type countFunc func(target interval.Interval) int

type lookupPhase struct {
	name   string
	lookup countFunc
}

type runner struct {
	cfg      *Config
	log      logger.Logger
	registry metrics.Registry
	inserts  []interval.Interval
	lookups  []interval.Interval
}

func newRunner(cfg *Config, log logger.Logger) *runner {
	return &runner{
		cfg:      cfg,
		log:      log,
		registry: metrics.NewRegistry(),
		inserts:  rangegen.Generate(cfg.InsertSeed, cfg.Params),
		lookups:  rangegen.Generate(cfg.LookupSeed, cfg.Params),
	}
}

// run executes every phase and returns the registry holding their timings.
func (r *runner) run() (metrics.Registry, error) {
	fanout := r.cfg.Fanout()

	containers := []struct {
		name  string
		fresh func() (container, error)
	}{
		{"rtree", func() (container, error) { return interval.NewWithFanout(fanout) }},
		{"list", func() (container, error) { return baseline.NewList(), nil }},
		{"btree", func() (container, error) { return baseline.NewSorted(r.cfg.BTreeDegree), nil }},
	}

	for _, c := range containers {
		if err := r.timeInserts(c.name+".insert", c.fresh); err != nil {
			return nil, err
		}

		if err := r.timeRemoves(c.name+".remove", c.fresh); err != nil {
			return nil, err
		}
	}

	tree, err := r.timeBulkLoads(fanout)
	if err != nil {
		return nil, err
	}

	list, err := baseline.NewListFrom(r.inserts)
	if err != nil {
		return nil, err
	}

	sorted := baseline.NewSorted(r.cfg.BTreeDegree)
	if err := fill(sorted, r.inserts); err != nil {
		return nil, err
	}

	metrics.GetOrRegisterGauge("rtree.height", r.registry).Update(int64(tree.Height()))

	want, err := r.compareLookups([]lookupPhase{
		{"rtree.lookup", func(target interval.Interval) int {
			return countItems(tree.Query(interval.Containing(target)))
		}},
		{"list.lookup", func(target interval.Interval) int {
			return countItems(list.Query(interval.Containing(target)))
		}},
		{"btree.lookup", func(target interval.Interval) int {
			return countItems(sorted.Containing(target))
		}},
	})
	if err != nil {
		return nil, err
	}

	_, err = r.compareLookups([]lookupPhase{
		{"rtree.find", func(target interval.Interval) int {
			return hit(first(tree.Query(interval.Containing(target))))
		}},
		{"list.find", func(target interval.Interval) int {
			return hit(list.Find(interval.Containing(target)))
		}},
	})
	if err != nil {
		return nil, err
	}

	_, err = r.compareLookups([]lookupPhase{
		{"rtree.overlap", func(target interval.Interval) int {
			return countItems(tree.Query(interval.Intersecting(target)))
		}},
		{"list.overlap", func(target interval.Interval) int {
			return countItems(list.Query(interval.Intersecting(target)))
		}},
		{"btree.overlap", func(target interval.Interval) int {
			return countItems(sorted.Query(interval.Intersecting(target)))
		}},
	})
	if err != nil {
		return nil, err
	}

	if r.cfg.Readers > 0 {
		if got := r.timeSharedLookups(interval.NewShared(tree)); got != want {
			return nil, errors.Wrapf(errMismatch, "shared.lookup found %d, rtree.lookup found %d", got, want)
		}
	}

	return r.registry, nil
}

// compareLookups times every phase and checks that each one matches as many
// intervals as the first. It returns that count.
func (r *runner) compareLookups(phases []lookupPhase) (int, error) {
	want := r.timeLookups(phases[0].name, phases[0].lookup)

	for _, p := range phases[1:] {
		if got := r.timeLookups(p.name, p.lookup); got != want {
			return 0, errors.Wrapf(errMismatch, "%s found %d, %s found %d", p.name, got, phases[0].name, want)
		}
	}

	return want, nil
}

func fill(c container, items []interval.Interval) error {
	for _, item := range items {
		if err := c.Insert(item); err != nil {
			return err
		}
	}

	return nil
}

// timeInserts fills a fresh container from the insert batch once per
// iteration.
func (r *runner) timeInserts(name string, fresh func() (container, error)) error {
	timer := metrics.GetOrRegisterTimer(name, r.registry)
	r.log.Debugf("running %s", name)

	for range r.cfg.Iterations {
		c, err := fresh()
		if err != nil {
			return errors.Wrap(err, name)
		}

		start := time.Now()

		if err := fill(c, r.inserts); err != nil {
			return errors.Wrap(err, name)
		}

		timer.UpdateSince(start)
	}

	return nil
}

// timeRemoves drains a filled container in insertion order once per
// iteration. Only the removals are timed.
func (r *runner) timeRemoves(name string, fresh func() (container, error)) error {
	timer := metrics.GetOrRegisterTimer(name, r.registry)
	r.log.Debugf("running %s", name)

	for range r.cfg.Iterations {
		c, err := fresh()
		if err != nil {
			return errors.Wrap(err, name)
		}

		if err := fill(c, r.inserts); err != nil {
			return errors.Wrap(err, name)
		}

		start := time.Now()

		for _, item := range r.inserts {
			if !c.Remove(item) {
				return errors.Wrapf(errNotStored, "%s: %s", name, item)
			}
		}

		timer.UpdateSince(start)
	}

	return nil
}

// timeBulkLoads times both bulk constructions and returns the last tree.
func (r *runner) timeBulkLoads(fanout interval.Fanout) (*interval.Tree, error) {
	treeTimer := metrics.GetOrRegisterTimer("rtree.bulk_load", r.registry)
	listTimer := metrics.GetOrRegisterTimer("list.bulk_load", r.registry)
	r.log.Debug("running bulk loads")

	var tree *interval.Tree

	for range r.cfg.Iterations {
		start := time.Now()

		var err error
		if tree, err = interval.BulkLoadWithFanout(fanout, r.inserts); err != nil {
			return nil, errors.Wrap(err, "rtree.bulk_load")
		}

		treeTimer.UpdateSince(start)

		start = time.Now()
		if _, err := baseline.NewListFrom(r.inserts); err != nil {
			return nil, errors.Wrap(err, "list.bulk_load")
		}

		listTimer.UpdateSince(start)
	}

	return tree, nil
}

// timeLookups runs every lookup target once per iteration and returns the
// number of matches found in a single pass.
func (r *runner) timeLookups(name string, lookup countFunc) int {
	timer := metrics.GetOrRegisterTimer(name, r.registry)
	r.log.Debugf("running %s", name)

	matches := 0

	for range r.cfg.Iterations {
		matches = 0
		start := time.Now()

		for _, target := range r.lookups {
			matches += lookup(target)
		}

		timer.UpdateSince(start)
	}

	metrics.GetOrRegisterGauge(name+".matches", r.registry).Update(int64(matches))

	return matches
}

// timeSharedLookups splits the lookup targets over cfg.Readers goroutines
// querying the same tree.
func (r *runner) timeSharedLookups(shared *interval.Shared) int {
	timer := metrics.GetOrRegisterTimer("shared.lookup", r.registry)
	r.log.Debugf("running shared.lookup with %d readers", r.cfg.Readers)

	matches := 0

	for range r.cfg.Iterations {
		perReader := make([]int, r.cfg.Readers)
		start := time.Now()

		var wg sync.WaitGroup
		for reader := range r.cfg.Readers {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for i := reader; i < len(r.lookups); i += r.cfg.Readers {
					perReader[reader] += countItems(shared.Query(interval.Containing(r.lookups[i])))
				}
			}()
		}

		wg.Wait()
		timer.UpdateSince(start)

		matches = 0
		for _, n := range perReader {
			matches += n
		}
	}

	metrics.GetOrRegisterGauge("shared.lookup.matches", r.registry).Update(int64(matches))

	return matches
}

func countItems(seq iter.Seq[interval.Interval]) int {
	n := 0

	for range seq {
		n++
	}

	return n
}

// first returns the first interval seq yields.
func first(seq iter.Seq[interval.Interval]) (interval.Interval, bool) {
	for item := range seq {
		return item, true
	}

	return interval.Interval{}, false
}

func hit(_ interval.Interval, ok bool) int {
	if ok {
		return 1
	}

	return 0
}
