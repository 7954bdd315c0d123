package service

import (
	"context"
	"time"

	"gitstats/internal/core/timewin"
	"gitstats/internal/forge/github"
	"gitstats/internal/services/api/repositories/domain"
)

// CommitTimeline buckets the window's commits into a dense timeline
func (s *Svc) CommitTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (domain.CommitTimeline, error) {
	now := s.now().UTC()
	since := period.Since(now)

	commits, err := s.forge.Commits(ctx, bearer, owner, repo, github.CommitsQuery{
		Since: since.Format(time.RFC3339),
	})
	if err != nil {
		return domain.CommitTimeline{}, loadErr(err, "commit timeline")
	}

	counter := timewin.NewCounter(period.Buckets(now))
	for _, c := range commits {
		if c.Commit.Author == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, c.Commit.Author.Date)
		if err != nil {
			continue
		}
		counter.Add(period.Label(t))
	}

	points := make([]domain.TimelinePoint, 0, period.Points())
	for _, p := range counter.Points() {
		points = append(points, domain.TimelinePoint{Label: p.Label, Count: p.Count})
	}
	return domain.CommitTimeline{Period: string(period), Points: points}, nil
}

// IssuesTimeline buckets opened and closed issues into a dense timeline.
// PR records returned by the issues endpoint are skipped
func (s *Svc) IssuesTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (domain.IssuesTimeline, error) {
	now := s.now().UTC()
	// the issues filter is day-resolution; a date-only since is enough
	since := period.Since(now).Format(time.DateOnly)

	opened := timewin.NewCounter(period.Buckets(now))
	closed := timewin.NewCounter(period.Buckets(now))

	for _, state := range []string{"open", "closed"} {
		issues, err := s.forge.Issues(ctx, bearer, owner, repo, github.IssuesQuery{
			State:  state,
			Since:  since,
			Filter: "all",
		})
		if err != nil {
			return domain.IssuesTimeline{}, loadErr(err, "issues timeline")
		}
		for _, is := range issues {
			if is.IsPull() {
				continue
			}
			raw := is.CreatedAt
			counter := opened
			if state == "closed" {
				counter = closed
				if is.ClosedAt != nil && *is.ClosedAt != "" {
					raw = *is.ClosedAt
				}
			}
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				continue
			}
			counter.Add(period.Label(t))
		}
	}

	points := make([]domain.IssuesTimelinePoint, 0, period.Points())
	op, cl := opened.Points(), closed.Points()
	for i := range op {
		points = append(points, domain.IssuesTimelinePoint{
			Label:  op[i].Label,
			Opened: op[i].Count,
			Closed: cl[i].Count,
		})
	}
	return domain.IssuesTimeline{
		Period:      string(period),
		Points:      points,
		TotalOpen:   opened.Total(),
		TotalClosed: closed.Total(),
	}, nil
}

// PullRequestsTimeline buckets opened and merged pull requests.
// The pulls endpoint has no since filter, so the window guard is
// applied client side with a one day grace against timezone skew
func (s *Svc) PullRequestsTimeline(ctx context.Context, bearer, owner, repo string, period timewin.Period) (domain.PullRequestsTimeline, error) {
	now := s.now().UTC()
	guard := period.Since(now).AddDate(0, 0, -1)

	openCtr := timewin.NewCounter(period.Buckets(now))
	mergedCtr := timewin.NewCounter(period.Buckets(now))

	add := func(counter *timewin.Counter, raw string) {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return
		}
		if t.Before(guard) {
			return
		}
		counter.Add(period.Label(t))
	}

	open, err := s.forge.Pulls(ctx, bearer, owner, repo, "open")
	if err != nil {
		return domain.PullRequestsTimeline{}, loadErr(err, "pull requests timeline")
	}
	for _, pr := range open {
		add(openCtr, pr.CreatedAt)
	}

	closedPRs, err := s.forge.Pulls(ctx, bearer, owner, repo, "closed")
	if err != nil {
		return domain.PullRequestsTimeline{}, loadErr(err, "pull requests timeline")
	}
	for _, pr := range closedPRs {
		if pr.MergedAt != nil && *pr.MergedAt != "" {
			add(mergedCtr, *pr.MergedAt)
		}
	}

	points := make([]domain.PRTimelinePoint, 0, period.Points())
	op, mg := openCtr.Points(), mergedCtr.Points()
	for i := range op {
		points = append(points, domain.PRTimelinePoint{
			Label:  op[i].Label,
			Opened: op[i].Count,
			Merged: mg[i].Count,
		})
	}
	return domain.PullRequestsTimeline{
		Period:      string(period),
		Points:      points,
		TotalOpen:   openCtr.Total(),
		TotalMerged: mergedCtr.Total(),
	}, nil
}
