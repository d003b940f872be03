package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// LoggerExtractor adds request_id to log records written with a request context.
// Pass it to logger.WithContextExtractors.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
