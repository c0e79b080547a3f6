package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fluxline/accountd/pkg/jwtx"
)

func TestChain_Order(t *testing.T) {
	var order []string
	stage := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), stage("first"), stage("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestChain_ShortCircuit(t *testing.T) {
	deny := Middleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	})

	handlerRan := false
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}), deny)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, handlerRan, "short-circuited stage must not reach the handler")
}

func TestBearerToken_SourceOrder(t *testing.T) {
	t.Run("header wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?access_token=from-query", nil)
		r.Header.Set("Authorization", "Bearer from-header")
		r.AddCookie(&http.Cookie{Name: CookieTokenName, Value: "from-cookie"})

		tok, ok := BearerToken(r)
		require.True(t, ok)
		require.Equal(t, "from-header", tok)
	})

	t.Run("query beats cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?access_token=from-query", nil)
		r.AddCookie(&http.Cookie{Name: CookieTokenName, Value: "from-cookie"})

		tok, ok := BearerToken(r)
		require.True(t, ok)
		require.Equal(t, "from-query", tok)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieTokenName, Value: "from-cookie"})

		tok, ok := BearerToken(r)
		require.True(t, ok)
		require.Equal(t, "from-cookie", tok)
	})

	t.Run("nothing present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := BearerToken(r)
		require.False(t, ok)
	})

	t.Run("non-bearer scheme falls through", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?access_token=from-query", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		tok, ok := BearerToken(r)
		require.True(t, ok)
		require.Equal(t, "from-query", tok)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	const secret = "authn-test-secret"
	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier(secret, "")
	require.NoError(t, err)

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromCtx(r.Context())
		require.True(t, ok)
		role, _ := RoleFromCtx(r.Context())
		WriteJSON(w, http.StatusOK, map[string]string{"sub": id, "role": role})
	}), AuthnMiddleware(verifier))

	t.Run("valid token attaches claims", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u1", "admin", "", time.Hour, time.Now().UTC()))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"sub":"u1"`)
		require.Contains(t, rec.Body.String(), `"role":"admin"`)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("expired token is 401", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u1", "user", "", time.Minute, time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token via query parameter", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u2", "user", "", time.Hour, time.Now().UTC()))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?access_token="+token, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token via cookie", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u3", "user", "", time.Hour, time.Now().UTC()))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieTokenName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RateLimitByIP(cfg))

	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		return r
	}

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req())
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client gets its own bucket
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.9.9.9:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIPKeyExtractor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:9999"
	require.Equal(t, "192.0.2.7", IPKeyExtractor(r))

	r.Header.Set("X-Real-IP", "203.0.113.5")
	require.Equal(t, "203.0.113.5", IPKeyExtractor(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.5")
	require.Equal(t, "198.51.100.1", IPKeyExtractor(r))
}
