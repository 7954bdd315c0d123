package domain

import (
	"context"

	"gitstats/internal/core/timewin"
	"gitstats/internal/forge/github"
)

// ForgePort is the slice of the forge client the aggregators consume.
// Satisfied by *github.Client; stubbed in tests
type ForgePort interface {
	ViewerRepos(ctx context.Context, bearer string) ([]github.Repo, error)
	Repo(ctx context.Context, bearer, owner, name string) (github.Repo, error)
	Branches(ctx context.Context, bearer, owner, name string) ([]github.Branch, error)
	Contributors(ctx context.Context, bearer, owner, name string) ([]github.Contributor, error)
	Languages(ctx context.Context, bearer, owner, name string) (map[string]int64, error)
	Commits(ctx context.Context, bearer, owner, name string, q github.CommitsQuery) ([]github.Commit, error)
	CommitsPage(ctx context.Context, bearer, owner, name string, q github.CommitsQuery, perPage int) ([]github.Commit, error)
	CommitDetail(ctx context.Context, bearer, owner, name, sha string) (github.CommitDetail, error)
	Issues(ctx context.Context, bearer, owner, name string, q github.IssuesQuery) ([]github.Issue, error)
	Pulls(ctx context.Context, bearer, owner, name, state string) ([]github.Pull, error)
}

// ServicePort is the aggregation surface exposed to transport and other modules.
// The bearer always flows in explicitly; the service keeps no request state
type ServicePort interface {
	UserRepos(ctx context.Context, bearer string) ([]Repository, error)
	Contributors(ctx context.Context, bearer, owner, repo string) ([]Contributor, error)
	Languages(ctx context.Context, bearer, owner, repo string) ([]LanguageStats, error)
	Network(ctx context.Context, bearer, owner, repo string, maxCommits int) (NetworkGraph, error)
	CommitTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (CommitTimeline, error)
	IssuesTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (IssuesTimeline, error)
	PullRequestsTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (PullRequestsTimeline, error)
	IndividualStats(ctx context.Context, bearer, owner, repo, login string, period timewin.StatsPeriod) (CommitStats, error)
	ContributionStats(ctx context.Context, bearer, owner, repo string, period timewin.StatsPeriod) (ContributionStats, error)
	WorkTypeStats(ctx context.Context, bearer, owner, repo string, period timewin.StatsPeriod) (WorkTypeStats, error)
}
