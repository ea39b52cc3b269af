package httpx

import "context"

type ctxKey string

const (
	CtxKeyAdminID   ctxKey = "admin_id"
	CtxKeySessionID ctxKey = "session_id"
	CtxKeyClaims    ctxKey = "claims" // if you want full jwtx.Claims
)

// AdminIDFromCtx returns the authenticated admin's ID, or "" when the
// request is unauthenticated.
func AdminIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAdminID).(string); ok {
		return v
	}
	return ""
}

// SessionIDFromCtx returns the session ID attached by the authn middleware.
func SessionIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySessionID).(string); ok {
		return v
	}
	return ""
}
