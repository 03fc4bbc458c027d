package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EscapedRoutePath makes chi match routes against the escaped request path,
// so URL params always arrive percent-encoded and can be decoded exactly
// once by the handler. Without it chi switches between URL.Path and
// URL.RawPath depending on how the client encoded the path.
func EscapedRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" {
			rctx.RoutePath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}
