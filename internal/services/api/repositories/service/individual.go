package service

import (
	"context"
	"strings"
	"time"

	"gitstats/internal/core/timewin"
	"gitstats/internal/forge/github"
	"gitstats/internal/services/api/repositories/domain"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// detailFetchers bounds parallel commit-detail fetches per request
const detailFetchers = 4

// topFilesCap mirrors the UI's "top files" widget size
const topFilesCap = 5

// IndividualStats aggregates one contributor's activity over a window.
// Commit details are fetched with bounded parallelism; the reduction
// is commutative so the fetch order never shows in the result
func (s *Svc) IndividualStats(ctx context.Context, bearer, owner, repo, login string, period timewin.StatsPeriod) (domain.CommitStats, error) {
	now := s.now().UTC()
	out := domain.CommitStats{AuthorLogin: login, Period: string(period)}

	rp, err := s.forge.Repo(ctx, bearer, owner, repo)
	if err != nil {
		return out, loadErr(err, "commit stats")
	}
	branch := deref(rp.DefaultBranch)

	q := github.CommitsQuery{Author: login, SHA: branch}
	if since := period.Since(now); since != nil {
		q.Since = since.Format(time.RFC3339)
	}
	commits, err := s.forge.Commits(ctx, bearer, owner, repo, q)
	if err != nil {
		return out, loadErr(err, "commit stats")
	}
	// a stale default branch can hide everything; retry unrestricted
	if len(commits) == 0 && branch != "" {
		q.SHA = ""
		commits, err = s.forge.Commits(ctx, bearer, owner, repo, q)
		if err != nil {
			return out, loadErr(err, "commit stats")
		}
	}

	// a header without a sha has no detail document to fetch
	commits = lo.Filter(commits, func(c github.Commit, _ int) bool { return c.SHA != "" })

	details := make([]github.CommitDetail, len(commits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchers)
	for i, c := range commits {
		g.Go(func() error {
			d, err := s.forge.CommitDetail(gctx, bearer, owner, repo, c.SHA)
			if err != nil {
				return err
			}
			details[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, loadErr(err, "commit stats")
	}

	files := map[string]struct{}{}
	for _, d := range details {
		out.CommitCount++
		if d.Stats != nil {
			out.TotalLinesAdded += d.Stats.Additions
			out.TotalLinesDeleted += d.Stats.Deletions
		}
		for _, f := range d.Files {
			if strings.TrimSpace(f.Filename) != "" {
				files[f.Filename] = struct{}{}
			}
		}
	}

	out.NetLinesChanged = out.TotalLinesAdded - out.TotalLinesDeleted
	if out.CommitCount > 0 {
		out.AvgCommitSizeLines = float64(out.TotalLinesAdded+out.TotalLinesDeleted) / float64(out.CommitCount)
	}
	out.DistinctFilesTouched = len(files)
	out.TopFilesModifiedCount = min(topFilesCap, len(files))
	out.MainLanguagesCount = countExtensions(files)

	if err := s.countIssueActivity(ctx, bearer, owner, repo, login, period, now, &out); err != nil {
		return out, err
	}
	return out, nil
}

// countExtensions counts distinct lowercased file extensions. A dot that
// starts or ends the filename does not make an extension
func countExtensions(files map[string]struct{}) int {
	exts := map[string]struct{}{}
	for name := range files {
		i := strings.LastIndexByte(name, '.')
		if i <= 0 || i == len(name)-1 {
			continue
		}
		exts[strings.ToLower(name[i+1:])] = struct{}{}
	}
	return len(exts)
}

// countIssueActivity tallies the login's issue and PR events in window
func (s *Svc) countIssueActivity(
	ctx context.Context,
	bearer, owner, repo, login string,
	period timewin.StatsPeriod,
	now time.Time,
	out *domain.CommitStats,
) error {
	inWindow := func(raw *string) bool {
		if raw == nil || *raw == "" {
			return false
		}
		t, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			return false
		}
		return period.Contains(t, now)
	}

	issues, err := s.forge.Issues(ctx, bearer, owner, repo, github.IssuesQuery{State: "all"})
	if err != nil {
		return loadErr(err, "commit stats")
	}
	for _, is := range issues {
		if is.IsPull() || is.User == nil || is.User.Login != login {
			continue
		}
		if inWindow(&is.CreatedAt) {
			out.IssuesOpened++
		}
		if inWindow(is.ClosedAt) {
			out.IssuesClosed++
		}
	}

	pulls, err := s.forge.Pulls(ctx, bearer, owner, repo, "all")
	if err != nil {
		return loadErr(err, "commit stats")
	}
	for _, pr := range pulls {
		if pr.User == nil || pr.User.Login != login {
			continue
		}
		if inWindow(&pr.CreatedAt) {
			out.PRsOpened++
		}
		if inWindow(pr.MergedAt) {
			out.PRsMerged++
		}
		if inWindow(pr.ClosedAt) {
			out.PRsClosed++
		}
	}
	return nil
}
