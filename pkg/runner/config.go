package runner

import (
	"errors"

	"github.com/dmitrymomot/advent/pkg/validator"
)

// Output formats understood by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config controls where inputs are read from and how reports are produced.
type Config struct {
	InputDir string `env:"AOC_INPUT_DIR"     envDefault:"inputs"`
	Format   string `env:"AOC_OUTPUT_FORMAT" envDefault:"text"`
	Parallel bool   `env:"AOC_PARALLEL"      envDefault:"false"`
}

// Validate checks the configuration. Failures wrap ErrInvalidConfig and
// carry validator.ValidationErrors.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.RequiredString("input_dir", c.InputDir),
		validator.InListString("format", c.Format, Formats),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
