package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Unless applies mw to every request except those matched by skip.
func Unless(skip func(*http.Request) bool, mw Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip(r) {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

// IsHealthCheck matches orchestrator liveness and readiness checks.
func IsHealthCheck(r *http.Request) bool {
	return r.Method == http.MethodGet && (r.URL.Path == "/live" || r.URL.Path == "/ready")
}
