package httpkit

import (
	"net/http"

	phttp "gitstats/internal/platform/net/http"
)

// Get registers a no-input GET handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetQuery registers a GET handler whose query string binds into Q
func GetQuery[Q any](r Router, path string, h func(*http.Request, Q) (any, error)) {
	r.Get(path, phttp.QueryHandler(h))
}
