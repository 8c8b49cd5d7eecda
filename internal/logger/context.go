package logger

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores id in ctx together with a logger that carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	l := log.Logger.With().Str("request_id", id).Logger()
	ctx = context.WithValue(ctx, requestIDKey, id)
	return l.WithContext(ctx)
}

// RequestIDFromContext returns the id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the logger attached to ctx, or the global one.
func FromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
