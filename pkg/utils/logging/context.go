package logging

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

type ctxPassIDKey struct{}

// CtxPassID returns the scan pass ID from context. If no pass ID is set,
// return a new one and a context carrying it.
func CtxPassID(ctx context.Context) (types.PassID, context.Context) {
	if id, ok := ctx.Value(ctxPassIDKey{}).(types.PassID); ok {
		return id, ctx
	}

	newID := types.NewPassID()
	return newID, context.WithValue(ctx, ctxPassIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}
