// Package logger builds *slog.Logger instances for the formcheck service and the
// validator package, and provides attribute helpers that keep key names consistent
// across log records.
//
// New applies functional options (format, level, output, static attributes and
// context extractors) and wraps the resulting handler in LogHandlerDecorator,
// which adds attributes pulled from context.Context on every record. This is how
// request ids set by the HTTP middleware end up on validator debug records.
//
//	log := logger.NewFromConfig(cfg.Log,
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "unknown rule dropped", logger.Field("age"), logger.Rule("adult"))
//
// Helpers such as Error and Errors return an empty slog.Attr for nil errors, so
// callers never need a nil check before logging.
package logger
