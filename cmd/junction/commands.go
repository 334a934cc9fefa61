package main

import (
	"fmt"
	"io"

	"github.com/maruel/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/junction/circuit"
	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/metrics"
	"github.com/katalvlaran/junction/partition"
	"github.com/katalvlaran/junction/point"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

const defaultEnvFile = ".env"

// session is everything one command invocation needs.
type session struct {
	cfg    Config
	log    zerolog.Logger
	reg    *prometheus.Registry
	driver *circuit.Driver
}

// openSession parses path and builds the index and driver per cfg.
func openSession(cfg Config, log zerolog.Logger, path string) (*session, error) {
	store, err := point.ParseFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Int("points", store.Len()).Msg("parsed")

	ix, err := distance.Build(store, distance.WithWorkers(cfg.EffectiveWorkers()))
	if err != nil {
		return nil, err
	}
	log.Debug().Int("edges", ix.Len()).Int("workers", cfg.EffectiveWorkers()).Msg("index built")

	reg := prometheus.NewRegistry()
	d, err := circuit.New(ix,
		circuit.WithStrategy(partition.Strategy(cfg.Strategy)),
		circuit.WithLogger(log),
		circuit.WithObserver(metrics.New(reg)),
	)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, log: log, reg: reg, driver: d}, nil
}

// close flushes metrics to the configured textfile.
func (s *session) close() error {
	if s.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.cfg.MetricsFile, s.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	s.log.Debug().Str("file", s.cfg.MetricsFile).Msg("metrics written")

	return nil
}

// commandRun holds what every subcommand shares.
type commandRun struct {
	subcommands.CommandRunBase
}

// execute loads config, opens a session over the single file argument, runs
// fn, and maps errors to exit codes.
func (c *commandRun) execute(a subcommands.Application, args []string, fn func(w io.Writer, s *session) error) int {
	if len(args) != 1 {
		fmt.Fprintln(a.GetErr(), "expected exactly one input file")
		return exitUsage
	}

	cfg, err := LoadConfig(defaultEnvFile)
	if err != nil {
		fmt.Fprintf(a.GetErr(), "config: %v\n", err)
		return exitUsage
	}
	log := NewLogger(cfg)

	s, err := openSession(cfg, log, args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("cannot load input")
		return exitFailed
	}

	runErr := fn(a.GetOut(), s)
	if err := s.close(); err != nil {
		log.Error().Err(err).Msg("cannot flush metrics")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("query failed")
		return exitFailed
	}

	return exitOK
}

func cmdTopK() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "topk [-edges N] [-k K] <file>",
		ShortDesc: "multiplies the sizes of the k largest circuits after N connections",
		LongDesc: "Connects the N closest pairs of junction boxes (pairs already in " +
			"the same circuit still count) and prints the product of the sizes of " +
			"the K largest circuits.",
		CommandRun: func() subcommands.CommandRun {
			c := &topKRun{}
			c.Flags.IntVar(&c.edges, "edges", 1000, "number of shortest connections to make")
			c.Flags.IntVar(&c.k, "k", 3, "number of largest circuits to multiply")
			return c
		},
	}
}

type topKRun struct {
	commandRun
	edges, k int
}

func (c *topKRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	return c.execute(a, args, func(w io.Writer, s *session) error {
		return printTopK(w, s.driver, c.edges, c.k)
	})
}

func printTopK(w io.Writer, d *circuit.Driver, edges, k int) error {
	// Inputs smaller than the default connection count use every edge.
	edges = min(edges, d.Edges())
	product, err := d.BoundedTopKProduct(edges, k)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, product)

	return err
}

func cmdConverge() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "converge <file>",
		ShortDesc: "multiplies the X coordinates of the connection that completes the circuit",
		LongDesc: "Connects pairs in order of distance until every junction box is in " +
			"one circuit and prints the product of the X coordinates of the last " +
			"pair connected.",
		CommandRun: func() subcommands.CommandRun {
			return &convergeRun{}
		},
	}
}

type convergeRun struct {
	commandRun
}

func (c *convergeRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	return c.execute(a, args, func(w io.Writer, s *session) error {
		return printConverge(w, s.driver)
	})
}

func printConverge(w io.Writer, d *circuit.Driver) error {
	product, err := d.ConvergenceEndpointProduct()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, product)

	return err
}

func cmdClusters() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "clusters [-edges N] [-limit L] <file>",
		ShortDesc: "lists circuits after N connections",
		LongDesc:  "Prints one line per circuit, largest first: size, centroid, radius and members.",
		CommandRun: func() subcommands.CommandRun {
			c := &clustersRun{}
			c.Flags.IntVar(&c.edges, "edges", 1000, "number of shortest connections to make")
			c.Flags.IntVar(&c.limit, "limit", 10, "print at most this many circuits, 0 for all")
			return c
		},
	}
}

type clustersRun struct {
	commandRun
	edges, limit int
}

func (c *clustersRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	return c.execute(a, args, func(w io.Writer, s *session) error {
		return printClusters(w, s.driver, c.edges, c.limit)
	})
}

func printClusters(w io.Writer, d *circuit.Driver, edges, limit int) error {
	snap, err := d.Snapshot(max(0, min(edges, d.Edges())))
	if err != nil {
		return err
	}
	if limit > 0 && limit < len(snap) {
		snap = snap[:limit]
	}
	for _, c := range snap {
		if _, err := fmt.Fprintf(w, "%d\t(%.2f,%.2f,%.2f)\t%.2f\t%v\n",
			c.Size, c.Centroid.X, c.Centroid.Y, c.Centroid.Z, c.Radius, c.Members); err != nil {
			return err
		}
	}

	return nil
}
