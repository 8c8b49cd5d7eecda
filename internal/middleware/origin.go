package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// OriginKey is the context key holding the origin of the calling page.
const OriginKey contextKey = "origin"

// WithOrigin stores origin in ctx.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, OriginKey, origin)
}

// OriginFromContext extracts the origin stored by the HTTP or gRPC middleware.
func OriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(OriginKey).(string)
	return origin, ok && origin != ""
}

// RequestOrigin resolves the page origin for a submission. Fixed wins when
// set; otherwise the origin captured from the incoming call is used, and
// Fallback when the call carried none.
type RequestOrigin struct {
	Fixed    string
	Fallback string
}

func (o RequestOrigin) Origin(ctx context.Context) string {
	if o.Fixed != "" {
		return o.Fixed
	}
	if origin, ok := OriginFromContext(ctx); ok {
		return origin
	}
	return o.Fallback
}

// Origin derives scheme://host[:port] of the incoming request and stores it
// in the request context.
func Origin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithOrigin(r.Context(), requestOrigin(r))))
	})
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	if host == "" {
		return ""
	}
	return scheme + "://" + host
}
