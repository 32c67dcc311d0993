// Package logger builds *slog.Logger instances from functional options.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("rfc")),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
// The default logger writes text at INFO level to stderr. Context
// extractors run on every record, so values stored in the context passed to
// InfoContext and friends show up as attributes.
package logger
