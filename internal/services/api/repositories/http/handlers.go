// Package http provides http transport for repository analytics
package http

import (
	stdhttp "net/http"

	"gitstats/internal/core/timewin"
	"gitstats/internal/modkit/httpkit"
	svc "gitstats/internal/services/api/repositories/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts the repository analytics endpoints
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{owner}/{repo}/contributors", h.contributors)
	httpkit.Get(r, "/{owner}/{repo}/languages", h.languages)
	httpkit.Get(r, "/{owner}/{repo}/contributors/{login}/commit-stats/{period}", h.commitStats)
	httpkit.GetQuery[NetworkQuery](r, "/{owner}/{repo}/network", h.network)
	httpkit.GetQuery[TimelineQuery](r, "/{owner}/{repo}/commit-timeline", h.commitTimeline)
	httpkit.GetQuery[TimelineQuery](r, "/{owner}/{repo}/issues-timeline", h.issuesTimeline)
	httpkit.GetQuery[TimelineQuery](r, "/{owner}/{repo}/pull-requests-timeline", h.pullsTimeline)
	httpkit.GetQuery[StatsQuery](r, "/{owner}/{repo}/contribution-stats", h.contributionStats)
	httpkit.GetQuery[StatsQuery](r, "/{owner}/{repo}/worktype-stats", h.workTypeStats)
}

type handlers struct{ svc svc.Service }

// NetworkQuery bounds the network view size
type NetworkQuery struct {
	MaxCommits int `query:"maxCommits" default:"50" validate:"min=1"`
}

// TimelineQuery selects the timeline window; unknown periods fall back to day
type TimelineQuery struct {
	Period string `query:"period" default:"day"`
}

// StatsQuery selects the stats window; unknown periods fall back to ALL_TIME
type StatsQuery struct {
	Period string `query:"period" default:"ALL_TIME"`
}

func ownerRepo(r *stdhttp.Request) (string, string) {
	return chi.URLParam(r, "owner"), chi.URLParam(r, "repo")
}

// swagger:route GET /repositories Repositories listRepositories
// @Summary List the viewer's repositories, most recently updated first
// @Tags Repositories
// @Produce json
// @Success 200 {array} domain.Repository "ok"
// @Router /repositories [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UserRepos(r.Context(), bearer)
}

// swagger:route GET /repositories/{owner}/{repo}/contributors Repositories listContributors
// @Summary List a repository's contributors
// @Tags Repositories
// @Produce json
// @Success 200 {array} domain.Contributor "ok"
// @Router /repositories/{owner}/{repo}/contributors [get]
func (h *handlers) contributors(r *stdhttp.Request) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.Contributors(r.Context(), bearer, owner, repo)
}

// swagger:route GET /repositories/{owner}/{repo}/languages Repositories repoLanguages
// @Summary Language byte breakdown with colors
// @Tags Repositories
// @Produce json
// @Success 200 {array} domain.LanguageStats "ok"
// @Router /repositories/{owner}/{repo}/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.Languages(r.Context(), bearer, owner, repo)
}

// swagger:route GET /repositories/{owner}/{repo}/network Repositories repoNetwork
// @Summary Branch and commit network view
// @Tags Repositories
// @Produce json
// @Param maxCommits query int false "commit cap, clamped to 100"
// @Success 200 {object} domain.NetworkGraph "ok"
// @Router /repositories/{owner}/{repo}/network [get]
func (h *handlers) network(r *stdhttp.Request, q NetworkQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.Network(r.Context(), bearer, owner, repo, q.MaxCommits)
}

// swagger:route GET /repositories/{owner}/{repo}/commit-timeline Repositories commitTimeline
// @Summary Dense commit timeline over the selected window
// @Tags Repositories
// @Produce json
// @Param period query string false "day, week or month"
// @Success 200 {object} domain.CommitTimeline "ok"
// @Router /repositories/{owner}/{repo}/commit-timeline [get]
func (h *handlers) commitTimeline(r *stdhttp.Request, q TimelineQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.CommitTimeline(r.Context(), bearer, owner, repo, timewin.ParsePeriod(q.Period))
}

// swagger:route GET /repositories/{owner}/{repo}/issues-timeline Repositories issuesTimeline
// @Summary Dense issues timeline over the selected window
// @Tags Repositories
// @Produce json
// @Param period query string false "day, week or month"
// @Success 200 {object} domain.IssuesTimeline "ok"
// @Router /repositories/{owner}/{repo}/issues-timeline [get]
func (h *handlers) issuesTimeline(r *stdhttp.Request, q TimelineQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.IssuesTimeline(r.Context(), bearer, owner, repo, timewin.ParsePeriod(q.Period))
}

// swagger:route GET /repositories/{owner}/{repo}/pull-requests-timeline Repositories pullRequestsTimeline
// @Summary Dense pull request timeline over the selected window
// @Tags Repositories
// @Produce json
// @Param period query string false "day, week or month"
// @Success 200 {object} domain.PullRequestsTimeline "ok"
// @Router /repositories/{owner}/{repo}/pull-requests-timeline [get]
func (h *handlers) pullsTimeline(r *stdhttp.Request, q TimelineQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.PullRequestsTimeline(r.Context(), bearer, owner, repo, timewin.ParsePeriod(q.Period))
}

// swagger:route GET /repositories/{owner}/{repo}/contributors/{login}/commit-stats/{period} Repositories commitStats
// @Summary Per-contributor commit stats over a window
// @Tags Repositories
// @Produce json
// @Success 200 {object} domain.CommitStats "ok"
// @Router /repositories/{owner}/{repo}/contributors/{login}/commit-stats/{period} [get]
func (h *handlers) commitStats(r *stdhttp.Request) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	login := chi.URLParam(r, "login")
	period := timewin.ParseStatsPeriod(chi.URLParam(r, "period"))
	return h.svc.IndividualStats(r.Context(), bearer, owner, repo, login, period)
}

// swagger:route GET /repositories/{owner}/{repo}/contribution-stats Repositories contributionStats
// @Summary Commit share per author over a window
// @Tags Repositories
// @Produce json
// @Param period query string false "ALL_TIME, LAST_MONTH or LAST_WEEK"
// @Success 200 {object} domain.ContributionStats "ok"
// @Router /repositories/{owner}/{repo}/contribution-stats [get]
func (h *handlers) contributionStats(r *stdhttp.Request, q StatsQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.ContributionStats(r.Context(), bearer, owner, repo, timewin.ParseStatsPeriod(q.Period))
}

// swagger:route GET /repositories/{owner}/{repo}/worktype-stats Repositories workTypeStats
// @Summary Commit work-type mix over a window
// @Tags Repositories
// @Produce json
// @Param period query string false "ALL_TIME, LAST_MONTH or LAST_WEEK"
// @Success 200 {object} domain.WorkTypeStats "ok"
// @Router /repositories/{owner}/{repo}/worktype-stats [get]
func (h *handlers) workTypeStats(r *stdhttp.Request, q StatsQuery) (any, error) {
	bearer, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	owner, repo := ownerRepo(r)
	return h.svc.WorkTypeStats(r.Context(), bearer, owner, repo, timewin.ParseStatsPeriod(q.Period))
}
