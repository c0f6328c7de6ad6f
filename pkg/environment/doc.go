// Package environment names the deployment environment a run belongs to and
// carries it through context.Context so loggers can tag every record with it.
//
// Parse normalises the short aliases ("dev", "stage", "prod") accepted in
// configuration. WithContext and FromContext store and read the value, and
// LoggerExtractor adapts it into a logger.ContextExtractor compatible
// function.
//
// # Usage
//
//	env := environment.Parse(cfg.Env)
//	ctx = environment.WithContext(ctx, env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
