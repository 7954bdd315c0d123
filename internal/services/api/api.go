// Package api provides the HTTP API for the application
package api

import (
	"gitstats/internal/forge/github"
	"gitstats/internal/platform/config"
	"gitstats/internal/platform/logger"
	phttp "gitstats/internal/platform/net/http"

	"gitstats/internal/modkit"
	"gitstats/internal/modkit/httpkit"
	"gitstats/internal/modkit/module"
	"gitstats/internal/modkit/swaggerkit"

	metamod "gitstats/internal/services/api/meta/module"
	reposmod "gitstats/internal/services/api/repositories/module"
	sessionmod "gitstats/internal/services/api/session/module"

	"golang.org/x/oauth2"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Forge          *github.Client
	Token          oauth2.TokenSource
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Forge: opt.Forge,
		Token: opt.Token,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		sessionmod.New(deps),
		reposmod.New(deps),
	}

	// flat /api surface with a common middleware stack
	httpkit.MountAPI(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
