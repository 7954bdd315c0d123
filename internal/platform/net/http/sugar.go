package http

import "net/http"

// GetJSON mounts a pure JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// GetQuery mounts a GET handler whose query string binds into Q
func GetQuery[Q any](r Router, path string, h func(*http.Request, Q) (any, error)) {
	r.Get(path, QueryHandler(h))
}
