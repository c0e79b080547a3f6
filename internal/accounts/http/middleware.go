package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/slogx"
)

type userCtxKey struct{}

// UserFromContext returns the user loaded by AttachUser.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}

// AttachUser resolves the verified token subject to a stored user and places
// it on the request context. A subject that no longer resolves (deleted or
// never existed) is a 401: the token may be cryptographically valid but the
// session behind it is gone.
func AttachUser(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID, ok := httpx.UserIDFromCtx(ctx)
			if !ok || userID == "" {
				accountsdk.ErrUnauthorized.WriteError(w)
				return
			}

			user, err := st.Users().GetUserByID(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Info("token subject no longer exists", "user_id", userID)
					accountsdk.ErrUnauthorized.WriteError(w)
					return
				}
				log.Error("failed to load user", "user_id", userID, "err", err)
				accountsdk.ErrServerError.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, userCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole enforces a minimum role for the attached user. Must run after
// AttachUser; the check uses the stored role, not the token claim, so demoted
// users lose access without waiting for token expiry.
func RequireRole(roles domain.RoleList, minimum string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				accountsdk.ErrUnauthorized.WriteError(w)
				return
			}

			if !roles.AtLeast(user.Role, minimum) {
				accountsdk.ErrForbidden.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
