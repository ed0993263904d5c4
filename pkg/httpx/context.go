package httpx

import "context"

type ctxKey string

// CtxKeyUsername holds the principal accepted by BasicAuth.
const CtxKeyUsername ctxKey = "username"

func contextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, CtxKeyUsername, username)
}

// UsernameFromContext returns the authenticated username, or "" for
// unauthenticated requests.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
