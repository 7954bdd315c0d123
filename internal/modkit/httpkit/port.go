// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"

	perrs "gitstats/internal/platform/errors"

	"golang.org/x/oauth2"
)

// Port implements middleware.AuthPort by reading the Authorization header
// and falling back to a configured token source (e.g. a static GITHUB_TOKEN)
type Port struct {
	fallback oauth2.TokenSource
}

// NewPort builds a Port with an optional fallback token source
func NewPort(fallback oauth2.TokenSource) *Port {
	return &Port{fallback: fallback}
}

// Parse resolves the bearer to use upstream
// returns unauthorized when neither the header nor the fallback yields a token
func (p *Port) Parse(r *http.Request) (string, error) {
	if tok := HeaderBearer(r); tok != "" {
		return tok, nil
	}
	if p != nil && p.fallback != nil {
		t, err := p.fallback.Token()
		if err == nil && t.AccessToken != "" {
			return t.AccessToken, nil
		}
	}
	return "", perrs.Unauthorizedf("Please login first")
}
