package middleware

import (
	"net/http"

	pnet "gitstats/internal/platform/net"
)

// AuthPort resolves the forge bearer token for a request
type AuthPort interface {
	// Parse returns the bearer token to use upstream or an error when none resolves
	Parse(r *http.Request) (bearer string, err error)
}

// Auth gates a subtree on a resolved bearer. It is a no-op until a port is wired
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			bearer, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err)
				write(w, status, body)
				return
			}
			ctx := pnet.WithBearer(r.Context(), bearer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
