package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/advent/pkg/environment"
)

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	t.Run("with environment", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Production)

		attr, ok := extract(ctx)
		assert.True(t, ok)
		assert.Equal(t, "env", attr.Key)
		assert.Equal(t, "production", attr.Value.String())
	})

	t.Run("without environment", func(t *testing.T) {
		t.Parallel()
		_, ok := extract(context.Background())
		assert.False(t, ok)
	})
}
