package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// GRPCOriginInterceptor copies the "origin" metadata entry into the call context.
func GRPCOriginInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return handler(ctx, req)
	}

	if values := md.Get("origin"); len(values) > 0 && values[0] != "" {
		ctx = WithOrigin(ctx, values[0])
	}

	return handler(ctx, req)
}
