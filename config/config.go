// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/search"
)

// ErrInvalidConfig wraps every parse or range failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvSize         = "MAZE_SIZE"
	EnvWallProb     = "MAZE_WALL_PROB"
	EnvSeed         = "MAZE_SEED"
	EnvLayout       = "MAZE_LAYOUT"
	EnvStrategy     = "MAZE_STRATEGY"
	EnvAnimateDelay = "MAZE_ANIMATE_DELAY"
	EnvHTTPAddr     = "HTTP_ADDR"
	EnvCORSOrigin   = "HTTP_CORS_ORIGIN"
	EnvGinMode      = "GIN_MODE"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

// Config holds the application's configuration values.
type Config struct {
	Size            int             // maze side length
	WallProbability float64         // chance a generated cell is a wall
	Seed            int64           // RNG seed, 0 means time-based
	Layout          maze.Layout     // random or perfect
	Strategy        search.Strategy // default search strategy
	AnimateDelay    time.Duration   // pause between animation frames
	HTTPAddr        string          // listen address for -serve
	CORSOrigin      string          // allowed browser origin, empty disables CORS
	GinMode         string          // debug, release or test
	LogLevel        slog.Level      // minimum log level
	LogFormat       string          // text or json
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Size:            maze.DefaultSize,
		WallProbability: maze.DefaultWallProbability,
		Seed:            0,
		Layout:          maze.Random,
		Strategy:        search.AStar,
		AnimateDelay:    100 * time.Millisecond,
		HTTPAddr:        ":8080",
		GinMode:         "release",
		LogLevel:        slog.LevelInfo,
		LogFormat:       "text",
	}
}

// Load reads the given .env files (".env" if none) into the process
// environment without overriding variables already set, then builds a
// Config from the environment. A missing default .env is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Size, err = envInt(EnvSize, cfg.Size); err != nil {
		return Config{}, err
	}
	if cfg.Size < 2 {
		return Config{}, fmt.Errorf("%w: %s=%d must be at least 2", ErrInvalidConfig, EnvSize, cfg.Size)
	}
	if cfg.WallProbability, err = envFloat(EnvWallProb, cfg.WallProbability); err != nil {
		return Config{}, err
	}
	if !(cfg.WallProbability >= 0 && cfg.WallProbability <= 1) {
		return Config{}, fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidConfig, EnvWallProb, cfg.WallProbability)
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSeed, err)
		}
	}
	if v, ok := lookup(EnvLayout); ok {
		if cfg.Layout, err = maze.ParseLayout(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLayout, err)
		}
	}
	if v, ok := lookup(EnvStrategy); ok {
		if cfg.Strategy, err = search.ParseStrategy(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvStrategy, err)
		}
	}
	if v, ok := lookup(EnvAnimateDelay); ok {
		if cfg.AnimateDelay, err = time.ParseDuration(v); err != nil || cfg.AnimateDelay < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvAnimateDelay, v)
		}
	}
	if v, ok := lookup(EnvHTTPAddr); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup(EnvCORSOrigin); ok {
		cfg.CORSOrigin = v
	}
	if v, ok := lookup(EnvGinMode); ok {
		switch v = strings.ToLower(v); v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvGinMode, v)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if cfg.LogLevel, err = ParseLevel(v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvLogFormat); ok {
		if cfg.LogFormat, err = ParseFormat(v); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// ParseLevel accepts debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return l, nil
}

// ParseFormat accepts text or json.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "text", "json":
		return f, nil
	default:
		return "", fmt.Errorf("%w: log format %q", ErrInvalidConfig, s)
	}
}

// lookup returns a trimmed, non-empty variable.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err)
	}
	return f, nil
}
