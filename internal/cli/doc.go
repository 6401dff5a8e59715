// SPDX-License-Identifier: MIT

// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into a Config and runs the requested queries against
// a flight network.
package cli
