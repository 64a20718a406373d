// Package cli parses command-line arguments for mazeagent, validates them
// against the loaded configuration and reports usage errors with exit codes.
package cli
