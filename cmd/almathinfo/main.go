// Command almathinfo runs the geometry and motion routines of libalmath on
// the inputs of a YAML file and prints the results as tables.
//
// Usage:
//
//	almathinfo [flags] command
//
// Commands are hull, dubins, roots, interp and transform.
//
// Examples:
//
//	almathinfo hull
//	almathinfo -config robot.yaml dubins
//	almathinfo -plot profile.png interp
//	almathinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type command struct {
	name  string
	help  string
	run   func(w io.Writer, cfg Config, log *zap.Logger) error
	chart func(cfg Config) (chart, error)
}

var registry = []command{
	{"hull", "convex hull of hull.points", runHull, hullChart},
	{"dubins", "Dubins path from the origin to dubins.target", runDubins, dubinsChart},
	{"roots", "roots of the polynomial roots.coefficients", runRoots, nil},
	{"interp", "spline through interp.points sampled every interp.period", runInterp, interpChart},
	{"transform", "transform, logarithm and quaternion of transform.pose", runTransform, nil},
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in inputs")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides log_level")
	plotPath := flag.String("plot", "", "write a PNG chart of the result to this file")
	list := flag.Bool("list", false, "list available commands")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: almathinfo [flags] command\n\n")
		fmt.Fprintf(os.Stderr, "Runs libalmath routines on configured inputs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  almathinfo hull\n")
		fmt.Fprintf(os.Stderr, "  almathinfo -config robot.yaml dubins\n")
		fmt.Fprintf(os.Stderr, "  almathinfo -plot profile.png interp\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cmd, ok := lookup(flag.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown command %q (use -list to see available)\n", flag.Arg(0))
		os.Exit(1)
	}
	if err := cmd.run(os.Stdout, cfg, log); err != nil {
		log.Error("command failed", zap.String("command", cmd.name), zap.Error(err))
		os.Exit(1)
	}

	if *plotPath == "" {
		return
	}
	if cmd.chart == nil {
		log.Warn("command has no chart", zap.String("command", cmd.name))
		return
	}
	c, err := cmd.chart(cfg)
	if err == nil {
		err = c.save(*plotPath)
	}
	if err != nil {
		log.Error("plot failed", zap.String("file", *plotPath), zap.Error(err))
		os.Exit(1)
	}
	log.Info("chart written", zap.String("file", *plotPath))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func lookup(name string) (command, bool) {
	for _, c := range registry {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printList(w io.Writer) {
	cmds := append([]command(nil), registry...)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })
	for _, c := range cmds {
		fmt.Fprintf(w, "%-10s %s\n", c.name, c.help)
	}
}
