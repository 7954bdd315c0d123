// @title         GitStats API
// @version       0.1.0
// @description   Read only analytics endpoints over the GitHub REST API

package main

import (
	"context"

	"gitstats/internal/forge/github"
	"gitstats/internal/platform/config"
	"gitstats/internal/platform/logger"
	phttp "gitstats/internal/platform/net/http"

	"gitstats/internal/services/api"

	"golang.org/x/oauth2"
)

func main() {
	// service-scoped config for HTTP etc (API_*)
	root := config.New()
	apiCfg := root.Prefix("API_")
	ghCfg := root.Prefix("GITHUB_") // forge client lives under GITHUB_*

	// bring up logging early
	l := logger.Get()

	forge := github.NewClient(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", ""),
		UserAgent: ghCfg.MayString("USER_AGENT", "gitstats-api"),
	})

	// fallback token source for deployments that pin a PAT;
	// request bearers always win over it
	var ts oauth2.TokenSource
	if pat := ghCfg.MayString("TOKEN", ""); pat != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: pat})
	}

	// http server (reads API_PORT / API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Forge:          forge,
			Token:          ts,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
