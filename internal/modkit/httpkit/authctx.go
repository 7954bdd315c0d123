package httpkit

import (
	"net/http"
	"strings"

	perrs "gitstats/internal/platform/errors"
	pnet "gitstats/internal/platform/net"
)

// Bearer returns the resolved forge bearer from the request context
func Bearer(r *http.Request) (string, error) {
	tok := pnet.Bearer(r.Context())
	if tok == "" {
		return "", perrs.Unauthorizedf("Please login first")
	}
	return tok, nil
}

// MustBearer returns the resolved bearer or panics
// only use on routes protected by the auth middleware
func MustBearer(r *http.Request) string {
	tok, err := Bearer(r)
	if err != nil {
		panic(err)
	}
	return tok
}

// HeaderBearer returns the raw token from the Authorization header, or ""
// when the header is missing or malformed
func HeaderBearer(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return ""
	}
	// case-insensitive Bearer prefix
	const prefix = "bearer"
	ls := strings.ToLower(authz)
	if !strings.HasPrefix(ls, prefix) {
		return ""
	}
	return strings.TrimSpace(authz[len(prefix):])
}
