package grpcserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/guardkit/guardkit/pkg/logger"
	"github.com/guardkit/guardkit/pkg/requestid"
)

// MetadataKey is the incoming metadata key carrying the request identifier.
// gRPC normalizes metadata keys to lowercase.
const MetadataKey = "x-request-id"

// RequestLoggerInterceptor returns a unary interceptor that resolves the
// request identifier from incoming metadata, generating a UUID when the
// metadata carries none, injects a request-scoped logger into the handler
// context, and logs the RPC outcome with a level derived from the status
// code. A nil log falls back to a noop logger.
func RequestLoggerInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = newNoopLogger()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		reqID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(MetadataKey); len(ids) > 0 {
				reqID = ids[0]
			}
		}
		if reqID == "" {
			reqID = uuid.NewString()
		}

		rpcLogger := log.With(
			slog.String("request_id", reqID),
			slog.String("rpc_method", info.FullMethod),
		)

		ctx = requestid.WithContext(ctx, reqID)
		ctx = logger.WithContext(ctx, rpcLogger)

		resp, err := handler(ctx, req)

		st, _ := status.FromError(err)
		code := st.Code()

		level := slog.LevelInfo
		switch code {
		case codes.Internal, codes.Unavailable, codes.DataLoss, codes.Unknown:
			level = slog.LevelError
		case codes.DeadlineExceeded, codes.Unimplemented, codes.ResourceExhausted:
			level = slog.LevelWarn
		}

		rpcLogger.Log(ctx, level, "grpc request completed",
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
			slog.String("peer_addr", peerAddr(ctx)),
		)

		return resp, err
	}
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}
