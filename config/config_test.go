package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeagent/config"
	"github.com/katalvlaran/mazeagent/maze"
	"github.com/katalvlaran/mazeagent/search"
)

// clearEnv blanks every variable config reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvSize, config.EnvWallProb, config.EnvSeed, config.EnvLayout, config.EnvStrategy,
		config.EnvAnimateDelay, config.EnvHTTPAddr, config.EnvCORSOrigin, config.EnvGinMode,
		config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 20, cfg.Size)
	assert.Equal(t, search.AStar, cfg.Strategy)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSize, "35")
	t.Setenv(config.EnvWallProb, "0.3")
	t.Setenv(config.EnvSeed, "-7")
	t.Setenv(config.EnvLayout, "perfect")
	t.Setenv(config.EnvStrategy, "DFS")
	t.Setenv(config.EnvAnimateDelay, "250ms")
	t.Setenv(config.EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvCORSOrigin, "http://localhost:3000")
	t.Setenv(config.EnvGinMode, "debug")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "JSON")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Size:            35,
		WallProbability: 0.3,
		Seed:            -7,
		Layout:          maze.Perfect,
		Strategy:        search.DFS,
		AnimateDelay:    250 * time.Millisecond,
		HTTPAddr:        "127.0.0.1:9000",
		CORSOrigin:      "http://localhost:3000",
		GinMode:         "debug",
		LogLevel:        slog.LevelWarn,
		LogFormat:       "json",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		config.EnvSize:         "1",
		config.EnvWallProb:     "1.5",
		config.EnvSeed:         "abc",
		config.EnvLayout:       "spiral",
		config.EnvStrategy:     "greedy",
		config.EnvAnimateDelay: "fast",
		config.EnvGinMode:      "prod",
		config.EnvLogLevel:     "loud",
		config.EnvLogFormat:    "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestFromEnv_WallProbNaN(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvWallProb, "NaN")
	_, err := config.FromEnv()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_SIZE=12\nMAZE_STRATEGY=bfs\n"), 0o600))
	t.Setenv(config.EnvStrategy, "dfs")
	// godotenv writes into the process environment; unset afterwards.
	t.Cleanup(func() { os.Unsetenv(config.EnvSize) })
	require.NoError(t, os.Unsetenv(config.EnvSize))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, search.DFS, cfg.Strategy, "existing variables win over the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
