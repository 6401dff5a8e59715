// SPDX-License-Identifier: MIT

// Command flightnet answers shortest-route, spanning-tree and traversal
// queries over a flight network.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/flightnet/internal/cli"
)

// main is the entrypoint for the flightnet command.
func main() {
	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(logW, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	return cli.Run(context.Background(), outW, cfg, logger)
}
