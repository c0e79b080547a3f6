package httpx

import "net/http"

// Middleware wraps an http.Handler with one request-processing stage.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares around a handler as an explicit ordered list of
// request stages. The first middleware listed is the outermost, so it sees the
// request first; a stage short-circuits by writing a response and not calling
// its next handler.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
