package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hokaccha/go-prettyjson"
	"github.com/rcrowley/go-metrics"
)

// timing summarises one timer. Durations are in nanoseconds.
type timing struct {
	Name  string  `json:"name"`
	Runs  int64   `json:"runs"`
	Mean  float64 `json:"mean_ns"`
	Min   int64   `json:"min_ns"`
	Max   int64   `json:"max_ns"`
	P50   float64 `json:"p50_ns"`
	P99   float64 `json:"p99_ns"`
	Items int     `json:"items"`
}

// report is everything a run produced.
type report struct {
	Timings []timing         `json:"timings"`
	Gauges  map[string]int64 `json:"gauges"`
}

func newReport(registry metrics.Registry, cfg *Config) report {
	r := report{Gauges: make(map[string]int64)}

	registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Timer:
			s := m.Snapshot()
			r.Timings = append(r.Timings, timing{
				Name:  name,
				Runs:  s.Count(),
				Mean:  s.Mean(),
				Min:   s.Min(),
				Max:   s.Max(),
				P50:   s.Percentile(0.5),
				P99:   s.Percentile(0.99),
				Items: cfg.Count,
			})
		case metrics.Gauge:
			r.Gauges[name] = m.Value()
		}
	})

	slices.SortFunc(r.Timings, func(a, b timing) int {
		return strings.Compare(a.Name, b.Name)
	})

	return r
}

func (r report) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "phase\truns\tmean\tp50\tp99\tper item\t")

	for _, t := range r.Timings {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t\n",
			t.Name,
			t.Runs,
			time.Duration(t.Mean),
			time.Duration(t.P50),
			time.Duration(t.P99),
			time.Duration(t.Mean/float64(max(t.Items, 1))),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	names := make([]string, 0, len(r.Gauges))
	for name := range r.Gauges {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s = %d\n", name, r.Gauges[name]); err != nil {
			return err
		}
	}

	return nil
}

// writeJSON prints r indented, with ANSI colors only when colored is set.
func (r report) writeJSON(w io.Writer, colored bool) error {
	formatter := prettyjson.NewFormatter()
	formatter.DisabledColor = !colored

	b, err := formatter.Marshal(r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
