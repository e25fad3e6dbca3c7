package httpserver

import "context"

// Identity is the authenticated caller extracted from a verified bearer token.
type Identity struct {
	UserID   int64
	Username string
}

type ctxKey string

const (
	identityKey  ctxKey = "wf.identity"
	requestIDKey ctxKey = "wf.requestID"
)

// WithIdentity stores the authenticated caller in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx fetches the authenticated caller from the context.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithRequestID stores the request correlation id in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx fetches the request correlation id from the context.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
