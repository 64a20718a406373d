package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/mazeagent/config"
	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/search"
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

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line.
type Options struct {
	Size       int
	WallProb   float64
	Seed       int64
	Layout     maze.Layout
	Strategies []search.Strategy
	Solvable   bool
	Animate    bool
	Delay      time.Duration
	MazeFile   string
	Serve      string // listen address; empty means solve once and exit
	MaxExpand  int
	LogLevel   slog.Level
	LogFormat  string
	Color      bool
}

// Parse processes command-line arguments over defaults taken from cfg.
// It returns the options, a boolean indicating the program should exit
// cleanly (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	fs := flag.NewFlagSet("mazeagent", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
mazeagent - generate a maze and solve it with BFS, DFS or A*.

Usage:
  mazeagent [options]
  mazeagent -serve :8080

Options:
`)
		fs.PrintDefaults()
	}

	size := fs.Int("size", cfg.Size, "Side length of the generated maze.")
	wallProb := fs.Float64("wall-prob", cfg.WallProbability, "Probability that a generated cell is a wall.")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed; 0 picks one from the clock.")
	layout := fs.String("layout", cfg.Layout.String(), "Maze layout: random or perfect.")
	strategy := fs.String("strategy", cfg.Strategy.String(), "Search strategy: bfs, dfs, astar or all.")
	solvable := fs.Bool("solvable", false, "Open the fewest walls needed so the goal is reachable.")
	animate := fs.Bool("animate", false, "Draw the path one cell at a time.")
	delay := fs.Duration("delay", cfg.AnimateDelay, "Pause between animation frames.")
	mazeFile := fs.String("maze", "", "Load the maze from a text file ('.', '#', 'S', 'G') instead of generating one.")
	serve := fs.String("serve", "", "Start the HTTP API on this address instead of solving once (e.g. "+cfg.HTTPAddr+").")
	maxExpand := fs.Int("max-expansions", 0, "Abandon a search after this many expansions; 0 is unlimited.")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log output format: text or json.")
	color := fs.Bool("color", false, "Render with ANSI colours.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts := &Options{
		Size:      *size,
		WallProb:  *wallProb,
		Seed:      *seed,
		Solvable:  *solvable,
		Animate:   *animate,
		Delay:     *delay,
		MazeFile:  *mazeFile,
		Serve:     *serve,
		MaxExpand: *maxExpand,
		Color:     *color,
	}

	if opts.Size < 2 {
		return nil, false, usageError("invalid size %d: must be at least 2", opts.Size)
	}
	if !(opts.WallProb >= 0 && opts.WallProb <= 1) {
		return nil, false, usageError("invalid wall-prob %v: must be within [0,1]", opts.WallProb)
	}
	if opts.Delay < 0 {
		return nil, false, usageError("invalid delay %v: must not be negative", opts.Delay)
	}
	if opts.MaxExpand < 0 {
		return nil, false, usageError("invalid max-expansions %d: must not be negative", opts.MaxExpand)
	}

	var err error
	if opts.Layout, err = maze.ParseLayout(*layout); err != nil {
		return nil, false, usageError("invalid layout: %v", err)
	}
	strategies, err := parseStrategies(*strategy)
	if err != nil {
		return nil, false, usageError("invalid strategy: %v", err)
	}
	opts.Strategies = strategies

	if opts.LogLevel, err = config.ParseLevel(*logLevel); err != nil {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if opts.LogFormat, err = config.ParseFormat(*logFormat); err != nil {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	return opts, false, nil
}

// parseStrategies accepts "all" or a comma-separated list of strategy names.
func parseStrategies(s string) ([]search.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return search.Strategies(), nil
	}
	var out []search.Strategy
	seen := map[search.Strategy]bool{}
	for _, name := range strings.Split(s, ",") {
		st, err := search.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	return out, nil
}
