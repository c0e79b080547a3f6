package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyRole   ctxKey = "role"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims if you need them
)

// UserIDFromCtx returns the verified token subject, if any.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// RoleFromCtx returns the role carried by the verified token, if any.
func RoleFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyRole).(string)
	return v, ok && v != ""
}
