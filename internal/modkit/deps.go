// Package modkit provides module wiring and core deps
package modkit

import (
	"gitstats/internal/forge/github"
	"gitstats/internal/platform/config"
	"gitstats/internal/platform/logger"

	"golang.org/x/oauth2"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Forge *github.Client

	// Fallback token source used when a request carries no Authorization
	// header (e.g. oauth2.StaticTokenSource over GITHUB_TOKEN). Nil when
	// the deployment requires callers to bring their own bearer
	Token oauth2.TokenSource
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the forge client and token source
func (d Deps) ZeroOK() bool { return true }
