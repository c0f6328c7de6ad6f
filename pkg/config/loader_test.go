package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/advent/pkg/config"
)

type runnerDefaults struct {
	InputDir string `env:"AOC_TEST_INPUT_DIR" envDefault:"inputs"`
	Parallel bool   `env:"AOC_TEST_PARALLEL" envDefault:"false"`
	Target   int    `env:"AOC_TEST_TARGET" envDefault:"2020"`
}

type runnerOverrides struct {
	InputDir string `env:"AOC_TEST_OVERRIDE_DIR" envDefault:"inputs"`
	Parallel bool   `env:"AOC_TEST_OVERRIDE_PARALLEL" envDefault:"false"`
	Target   int    `env:"AOC_TEST_OVERRIDE_TARGET" envDefault:"2020"`
}

type cachedConfig struct {
	Format string `env:"AOC_TEST_CACHED_FORMAT" envDefault:"text"`
}

type firstKind struct {
	Value string `env:"AOC_TEST_KIND_ONE" envDefault:"one"`
}

type secondKind struct {
	Value string `env:"AOC_TEST_KIND_TWO" envDefault:"two"`
}

type requiredConfig struct {
	Required string `env:"AOC_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Level string `env:"AOC_TEST_FILE_LEVEL" envDefault:"info"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("AOC_TEST_OVERRIDE_DIR", "/tmp/aoc")
		t.Setenv("AOC_TEST_OVERRIDE_PARALLEL", "true")
		t.Setenv("AOC_TEST_OVERRIDE_TARGET", "3000")

		var cfg runnerOverrides
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/tmp/aoc", cfg.InputDir)
		assert.True(t, cfg.Parallel)
		assert.Equal(t, 3000, cfg.Target)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		os.Unsetenv("AOC_TEST_INPUT_DIR")
		os.Unsetenv("AOC_TEST_PARALLEL")
		os.Unsetenv("AOC_TEST_TARGET")

		var cfg runnerDefaults
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "inputs", cfg.InputDir)
		assert.False(t, cfg.Parallel)
		assert.Equal(t, 2020, cfg.Target)
	})

	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("AOC_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *runnerDefaults
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("caches per type", func(t *testing.T) {
		t.Setenv("AOC_TEST_CACHED_FORMAT", "json")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("AOC_TEST_CACHED_FORMAT", "yaml")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "json", second.Format)
	})

	t.Run("different types are independent", func(t *testing.T) {
		t.Setenv("AOC_TEST_KIND_ONE", "first")
		t.Setenv("AOC_TEST_KIND_TWO", "second")

		var one firstKind
		var two secondKind
		require.NoError(t, config.Load(&one))
		require.NoError(t, config.Load(&two))
		assert.Equal(t, "first", one.Value)
		assert.Equal(t, "second", two.Value)
	})
}

func TestResetCache(t *testing.T) {
	t.Setenv("AOC_TEST_FILE_LEVEL", "warn")

	var before fileConfig
	require.NoError(t, config.Load(&before))
	assert.Equal(t, "warn", before.Level)

	t.Setenv("AOC_TEST_FILE_LEVEL", "error")
	config.ResetCache()

	var after fileConfig
	require.NoError(t, config.Load(&after))
	assert.Equal(t, "error", after.Level)
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads variables from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("AOC_TEST_ENVFILE_VALUE=from-file\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("AOC_TEST_ENVFILE_VALUE") })

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from-file", os.Getenv("AOC_TEST_ENVFILE_VALUE"))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("AOC_TEST_ENVFILE_KEEP=from-file\n"), 0o600))
		t.Setenv("AOC_TEST_ENVFILE_KEEP", "from-env")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from-env", os.Getenv("AOC_TEST_ENVFILE_KEEP"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}

type mustConfig struct {
	Required string `env:"AOC_TEST_MUST_REQUIRED,required"`
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		os.Unsetenv("AOC_TEST_MUST_REQUIRED")

		var cfg mustConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("loads when the environment is complete", func(t *testing.T) {
		t.Setenv("AOC_TEST_MUST_REQUIRED", "set")

		var cfg mustConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "set", cfg.Required)
	})
}
