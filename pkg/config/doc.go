// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment;
//     Load falls back to the default `.env` in the working directory.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process; ResetCache clears the cache for tests.
//
// # Usage
//
//	type RunnerConfig struct {
//	    InputDir string `env:"AOC_INPUT_DIR" envDefault:"inputs"`
//	    Parallel bool   `env:"AOC_PARALLEL" envDefault:"false"`
//	}
//
//	var cfg RunnerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors returned by Load wrap ErrParsingConfig so callers can distinguish
// configuration problems with errors.Is.
package config
