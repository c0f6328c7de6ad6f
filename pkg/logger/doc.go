// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors
// and transparent injection of values stored in context.Context.
//
// A single factory – New – creates a *slog.Logger configured by Option
// functions. Options select the output format (text or json), the minimum
// level, default attributes applied to every record and ContextExtractor
// callbacks that pull attributes (for example the run id) out of the context
// each time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format
// and wraps it with LogHandlerDecorator, which runs the registered extractors
// before delegating to the underlying handler.
//
// Helper constructors such as Error, Day and Part live in attr.go and
// keep attribute naming consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "aoc"),
//		logger.WithOutput(os.Stderr),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "part solved", logger.Day(4), logger.Part("Part 1"))
package logger
