package requestid

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying the request identifier.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request identifier stored in ctx, or an empty
// string when none is present.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return requestID
}
