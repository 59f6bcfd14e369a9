package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/crystalix007/range-rtree/internal/logger"
)

const defaultConfig = "~/.rangebench.yaml"

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file with benchmark settings, ignored when missing",
		Value: defaultConfig,
	}
	countFlag = cli.IntFlag{
		Name:  "count",
		Usage: "number of intervals to insert and to look up",
	}
	iterations = cli.IntFlag{
		Name:  "iterations",
		Usage: "how many times every phase is repeated",
	}
	readers = cli.IntFlag{
		Name:  "readers",
		Usage: "goroutines querying the shared tree, 0 disables the phase",
	}
	jsonOutput = cli.BoolFlag{
		Name:  "json",
		Usage: "print the report as JSON",
	}
	debug = cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug log",
	}

	log = logger.New("rangebench")
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rangebench"
	app.Version = "v0.1.0"
	app.Usage = "Times inserts, removals, bulk loads and lookups of the interval R-tree against a list and a btree"
	app.Flags = []cli.Flag{configFile, countFlag, iterations, readers, jsonOutput, debug}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	logger.SetDebug(c.Bool(debug.Name))

	path, err := homedir.Expand(c.String(configFile.Name))
	if err != nil {
		return errors.Wrapf(err, "cannot determine home directory, specify config file with --%s", configFile.Name)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	applyFlags(c, cfg)

	if err := cfg.validate(); err != nil {
		return err
	}

	log.Infof("benchmarking %d intervals, %d iterations, fanout %d..%d", cfg.Count, cfg.Iterations, cfg.MinFanout, cfg.MaxFanout)

	registry, err := newRunner(cfg, log).run()
	if err != nil {
		return err
	}

	rep := newReport(registry, cfg)
	out := c.App.Writer
	if c.Bool(jsonOutput.Name) {
		return rep.writeJSON(out, out == os.Stdout && !color.NoColor)
	}

	return rep.writeTable(out)
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet(countFlag.Name) {
		cfg.Count = c.Int(countFlag.Name)
	}
	if c.IsSet(iterations.Name) {
		cfg.Iterations = c.Int(iterations.Name)
	}
	if c.IsSet(readers.Name) {
		cfg.Readers = c.Int(readers.Name)
	}
}
