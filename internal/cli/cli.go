// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/flightnet/netfile"
	"github.com/katalvlaran/flightnet/prim_kruskal"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Output formats for query results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the validated result of Parse.
type Config struct {
	// Network source: a file, a random network, or the built-in demo.
	NetworkPath string
	Random      int
	Extra       int
	Seed        int64

	// Queries.
	From, To  string
	MSTMethod string // "", prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal
	BFSStart  string
	Print     bool
	Export    netfile.Format // "" or a netfile format; skips the queries

	Output   string
	LogLevel zapcore.Level
}

// hasQuery reports whether any query was requested explicitly.
func (c *Config) hasQuery() bool {
	return c.From != "" || c.MSTMethod != "" || c.BFSStart != "" || c.Print || c.Export != ""
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("flightnet", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
flightnet - shortest routes, spanning trees and traversals over a flight network.

Usage:
  flightnet [options] [NETWORK_FILE]

Arguments:
  NETWORK_FILE
    A .yaml, .yml, .hcl or .json network file. Without it (and without
    -random) a small built-in demo network is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	networkFlag := flagSet.String("network", "", "Path to a network file.")
	randomFlag := flagSet.Int("random", 0, "Generate a random connected network with this many cities.")
	extraFlag := flagSet.Int("extra", 0, "Extra flights on top of the random spanning tree.")
	seedFlag := flagSet.Int64("seed", 1, "Seed for -random.")
	fromFlag := flagSet.String("from", "", "Origin city of a shortest-route query (requires -to).")
	toFlag := flagSet.String("to", "", "Destination city of a shortest-route query (requires -from).")
	mstFlag := flagSet.String("mst", "", "Compute a minimum spanning tree. Options: 'prim' or 'kruskal'.")
	bfsFlag := flagSet.String("bfs", "", "Breadth-first traversal from this city.")
	printFlag := flagSet.Bool("print", false, "Print every city and its flights.")
	exportFlag := flagSet.String("export", "", "Write the network instead of querying it. Options: 'yaml' or 'json'.")
	outputFlag := flagSet.String("output", OutputText, "Result format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		NetworkPath: *networkFlag,
		Random:      *randomFlag,
		Extra:       *extraFlag,
		Seed:        *seedFlag,
		From:        *fromFlag,
		To:          *toFlag,
		MSTMethod:   strings.ToLower(*mstFlag),
		BFSStart:    *bfsFlag,
		Print:       *printFlag,
		Export:      netfile.Format(strings.ToLower(*exportFlag)),
		Output:      strings.ToLower(*outputFlag),
	}
	if cfg.NetworkPath == "" && flagSet.NArg() > 0 {
		cfg.NetworkPath = flagSet.Arg(0)
	}

	if err := cfg.validate(*logLevelFlag); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

// validate checks cross-flag constraints and resolves the log level.
func (c *Config) validate(logLevel string) error {
	usage := func(msg string) error { return &ExitError{Code: 2, Message: msg} }

	if c.NetworkPath != "" && c.Random > 0 {
		return usage("-network and -random are mutually exclusive")
	}
	if c.Random < 0 || c.Extra < 0 {
		return usage("-random and -extra must not be negative")
	}
	if (c.From == "") != (c.To == "") {
		return usage("-from and -to must be given together")
	}
	switch c.MSTMethod {
	case "", prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return usage("invalid mst: must be 'prim' or 'kruskal'")
	}
	switch c.Export {
	case "", netfile.FormatYAML, netfile.FormatJSON:
	default:
		return usage("invalid export: must be 'yaml' or 'json'")
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return usage("invalid output: must be 'text' or 'json'")
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return usage("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	c.LogLevel = level

	return nil
}
