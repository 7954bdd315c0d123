package service

import (
	"context"
	"math"
	"sort"
	"time"

	"gitstats/internal/core/timewin"
	"gitstats/internal/core/worktype"
	"gitstats/internal/forge/github"
	"gitstats/internal/services/api/repositories/domain"

	"github.com/samber/lo"
)

// windowCommits lists the window's commits across all authors
func (s *Svc) windowCommits(ctx context.Context, bearer, owner, repo string, period timewin.StatsPeriod) ([]github.Commit, error) {
	var q github.CommitsQuery
	if since := period.Since(s.now().UTC()); since != nil {
		q.Since = since.Format(time.RFC3339)
	}
	return s.forge.Commits(ctx, bearer, owner, repo, q)
}

// ContributionStats partitions the window's commits by author
func (s *Svc) ContributionStats(ctx context.Context, bearer, owner, repo string, period timewin.StatsPeriod) (domain.ContributionStats, error) {
	out := domain.ContributionStats{Owner: owner, Repo: repo, Period: string(period)}

	commits, err := s.windowCommits(ctx, bearer, owner, repo, period)
	if err != nil {
		return out, loadErr(err, "contribution stats")
	}

	byAuthor := lo.GroupBy(commits, func(c github.Commit) string {
		login, _ := commitAuthor(c)
		return login
	})

	total := len(commits)
	rows := make([]domain.ContributionRow, 0, len(byAuthor))
	for login, cs := range byAuthor {
		rows = append(rows, domain.ContributionRow{
			Login:       login,
			CommitCount: len(cs),
			Percent:     math.Round(float64(len(cs))*1000.0/float64(total)) / 10.0,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CommitCount != rows[j].CommitCount {
			return rows[i].CommitCount > rows[j].CommitCount
		}
		return rows[i].Login < rows[j].Login
	})

	out.Contributors = rows
	return out, nil
}

// WorkTypeStats classifies the window's commit messages by keyword
func (s *Svc) WorkTypeStats(ctx context.Context, bearer, owner, repo string, period timewin.StatsPeriod) (domain.WorkTypeStats, error) {
	out := domain.WorkTypeStats{Owner: owner, Repo: repo, Period: string(period)}

	commits, err := s.windowCommits(ctx, bearer, owner, repo, period)
	if err != nil {
		return out, loadErr(err, "worktype stats")
	}

	var counts worktype.Counts
	for _, c := range commits {
		counts.Add(c.Commit.Message)
	}

	out.Feature = counts.Feature
	out.Bugfix = counts.Bugfix
	out.Test = counts.Test
	out.Docs = counts.Docs
	out.Refactor = counts.Refactor
	return out, nil
}
