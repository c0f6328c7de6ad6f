package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/advent/pkg/days"
	"github.com/dmitrymomot/advent/pkg/environment"
	"github.com/dmitrymomot/advent/pkg/logger"
	"github.com/dmitrymomot/advent/pkg/runner"
	"github.com/dmitrymomot/advent/pkg/validator"
)

const serviceName = "aoc"

// Config is read from the environment; command line flags override the
// runner settings.
type Config struct {
	Env           string `env:"AOC_ENV"            envDefault:"development"`
	LogLevel      string `env:"AOC_LOG_LEVEL"`
	LogFormat     string `env:"AOC_LOG_FORMAT"`
	ExpenseTarget int    `env:"AOC_EXPENSE_TARGET" envDefault:"2020"`

	Runner runner.Config
}

func (c Config) Validate() error {
	logFormats := []string{"", string(logger.FormatText), string(logger.FormatJSON)}
	return errors.Join(
		validator.Apply(validator.InListString("log_format", c.LogFormat, logFormats)),
		c.Runner.Validate(),
		c.puzzleOptions(nil).Validate(),
	)
}

func (c Config) puzzleOptions(log *slog.Logger) days.Options {
	return days.Options{
		ExpenseTarget: c.ExpenseTarget,
		Logger:        log,
	}
}

// newLogger builds the process logger. Explicit level and format settings
// win over the environment defaults, and verbose wins over both.
func newLogger(c Config, env environment.Environment, verbose bool, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		runner.LogRunID(),
	}
	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...), nil
}
