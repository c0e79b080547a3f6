package httpx

import (
	"net/http"
	"strings"
)

// Token transport fallbacks for clients that cannot set headers.
const (
	// QueryTokenParam is the query-string parameter carrying a bearer token.
	QueryTokenParam = "access_token"

	// CookieTokenName is the cookie carrying a bearer token.
	CookieTokenName = "token"
)

// BearerToken extracts the bearer token from a request. Sources are checked in
// order — Authorization header, then the access_token query parameter, then
// the token cookie — and the first match wins.
func BearerToken(r *http.Request) (string, bool) {
	if authz := r.Header.Get("Authorization"); authz != "" {
		if strings.HasPrefix(authz, "Bearer ") {
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			return raw, raw != ""
		}
		// A present-but-not-bearer Authorization header loses to nothing:
		// the fallbacks are only for requests with no usable header.
	}

	if raw := r.URL.Query().Get(QueryTokenParam); raw != "" {
		return raw, true
	}

	if c, err := r.Cookie(CookieTokenName); err == nil && c.Value != "" {
		return c.Value, true
	}

	return "", false
}
