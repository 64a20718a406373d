package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazeagent/api"
	"github.com/katalvlaran/mazeagent/api/i"
	mazeapi "github.com/katalvlaran/mazeagent/api/maze"
	"github.com/katalvlaran/mazeagent/config"
	"github.com/katalvlaran/mazeagent/gridgraph"
	"github.com/katalvlaran/mazeagent/internal/cli"
	"github.com/katalvlaran/mazeagent/internal/ctxlog"
	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/render"
	"github.com/katalvlaran/mazeagent/search"
)

// storeCapacity bounds how many mazes the HTTP server keeps in memory.
const storeCapacity = 1024

// main is the entrypoint for the mazeagent application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, shouldExit, err := cli.Parse(args, outW, cfg)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(logW, opts.LogLevel, opts.LogFormat)
	ctx = ctxlog.WithLogger(ctx, logger)

	if opts.Serve != "" {
		return serve(ctx, cfg, opts)
	}
	return solve(ctx, outW, opts)
}

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config, opts *cli.Options) error {
	gin.SetMode(cfg.GinMode)
	ctrl := mazeapi.NewController(mazeapi.NewMemoryStore(storeCapacity), mazeapi.Defaults{
		Size:            opts.Size,
		WallProbability: opts.WallProb,
		Strategy:        opts.Strategies[0],
	})
	router := api.NewRouter(api.Config{
		Addr:        opts.Serve,
		BaseURL:     "/api",
		Controllers: []i.Controller{ctrl},
		Logger:      ctxlog.FromContext(ctx),
		AllowOrigin: cfg.CORSOrigin,
	})
	return router.Run(ctx)
}

// solve builds or loads one maze, runs every requested strategy and prints the results.
func solve(ctx context.Context, outW io.Writer, opts *cli.Options) error {
	logger := ctxlog.FromContext(ctx)

	m, err := loadMaze(ctx, opts)
	if err != nil {
		return err
	}

	results, err := search.Race(ctx, m.Grid, m.Start, m.Goal, opts.Strategies,
		search.WithMaxExpansions(opts.MaxExpand))
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	r := render.New(render.WithColor(opts.Color))
	for k, res := range results {
		logger.Debug("Search finished.", "strategy", res.Strategy, "found", res.Found,
			"steps", res.Steps(), "expanded", res.Expanded, "enqueued", res.Enqueued)
		if k > 0 {
			fmt.Fprintln(outW)
		}
		fmt.Fprintf(outW, "== %s ==\n", res.Strategy)
		if opts.Animate {
			err = r.Animate(ctx, outW, m.Grid, res.Path, opts.Delay)
		} else {
			err = r.Render(outW, m.Grid, res.Path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(outW, summary(res))
	}
	return nil
}

// loadMaze reads -maze FILE or generates a maze from the options.
func loadMaze(ctx context.Context, opts *cli.Options) (*maze.Maze, error) {
	logger := ctxlog.FromContext(ctx)

	if opts.MazeFile != "" {
		raw, err := os.ReadFile(opts.MazeFile)
		if err != nil {
			return nil, fmt.Errorf("read maze: %w", err)
		}
		g, err := gridgraph.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse maze %s: %w", opts.MazeFile, err)
		}
		logger.Info("Maze loaded.", "file", opts.MazeFile, "size", g.Size())
		return maze.FromGrid(g)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mopts := []maze.Option{
		maze.WithSize(opts.Size),
		maze.WithWallProbability(opts.WallProb),
		maze.WithSeed(seed),
		maze.WithLayout(opts.Layout),
	}
	if opts.Solvable {
		mopts = append(mopts, maze.WithSolvable())
	}
	m, err := maze.Generate(mopts...)
	if err != nil {
		return nil, err
	}
	logger.Info("Maze generated.", "size", opts.Size, "layout", opts.Layout, "wall_prob", opts.WallProb, "seed", seed, "opened", len(m.Opened))
	return m, nil
}

func summary(res search.Result) string {
	switch {
	case res.Found:
		return fmt.Sprintf("%s: path of %d steps, %d cells expanded", res.Strategy, res.Steps(), res.Expanded)
	case res.Truncated:
		return fmt.Sprintf("%s: gave up after %d expansions", res.Strategy, res.Expanded)
	default:
		return fmt.Sprintf("%s: no path, %d cells expanded", res.Strategy, res.Expanded)
	}
}
