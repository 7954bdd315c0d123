package service

import (
	"context"
	"testing"
	"time"

	"gitstats/internal/core/timewin"
	"gitstats/internal/forge/github"

	"github.com/stretchr/testify/require"
)

func authoredCommit(login, message string) github.Commit {
	return github.Commit{
		Commit: github.CommitMeta{Message: message, Author: &github.CommitSig{Name: login + " full", Date: testNow.Format(time.RFC3339)}},
		Author: &github.Actor{Login: login},
	}
}

func TestContributionStats_PartitionAndOrder(t *testing.T) {
	t.Parallel()

	f := &fakeForge{commits: []github.Commit{
		authoredCommit("alice", "a"),
		authoredCommit("alice", "b"),
		authoredCommit("alice", "c"),
		authoredCommit("bob", "d"),
		{Commit: github.CommitMeta{Message: "e", Author: &github.CommitSig{Name: "Ghost Author"}}}, // deleted account
	}}
	s := newSvc(f, testNow)

	got, err := s.ContributionStats(context.Background(), "tok", "o", "r", timewin.AllTime)
	require.NoError(t, err)

	require.Equal(t, "o", got.Owner)
	require.Equal(t, "r", got.Repo)
	require.Equal(t, "ALL_TIME", got.Period)

	require.Len(t, got.Contributors, 3)
	require.Equal(t, "alice", got.Contributors[0].Login)
	require.Equal(t, 3, got.Contributors[0].CommitCount)
	require.Equal(t, 60.0, got.Contributors[0].Percent)

	// ties and tail sorted deterministically by login
	require.Equal(t, "Ghost Author", got.Contributors[1].Login)
	require.Equal(t, "bob", got.Contributors[2].Login)
	require.Equal(t, 20.0, got.Contributors[2].Percent)
}

func TestContributionStats_EmptyWindow(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeForge{}, testNow)

	got, err := s.ContributionStats(context.Background(), "tok", "o", "r", timewin.LastWeek)
	require.NoError(t, err)
	require.Empty(t, got.Contributors)
}

func TestContributionStats_WindowPassedUpstream(t *testing.T) {
	t.Parallel()

	f := &fakeForge{}
	s := newSvc(f, testNow)

	_, err := s.ContributionStats(context.Background(), "tok", "o", "r", timewin.LastMonth)
	require.NoError(t, err)
	require.Equal(t, testNow.AddDate(0, -1, 0).Format(time.RFC3339), f.gotCommitsQ[0].Since)

	_, err = s.ContributionStats(context.Background(), "tok", "o", "r", timewin.AllTime)
	require.NoError(t, err)
	require.Empty(t, f.gotCommitsQ[1].Since)
}

func TestWorkTypeStats_Classification(t *testing.T) {
	t.Parallel()

	f := &fakeForge{commits: []github.Commit{
		authoredCommit("a", "fix: crash"),
		authoredCommit("a", "Add feature X"),
		authoredCommit("a", "docs: readme"),
		authoredCommit("a", "tests for Y"),
		authoredCommit("a", "refactor module"),
	}}
	s := newSvc(f, testNow)

	got, err := s.WorkTypeStats(context.Background(), "tok", "o", "r", timewin.AllTime)
	require.NoError(t, err)

	require.Equal(t, 1, got.Bugfix)
	require.Equal(t, 1, got.Feature)
	require.Equal(t, 1, got.Docs)
	require.Equal(t, 1, got.Test)
	require.Equal(t, 1, got.Refactor)
}

func TestWorkTypeStats_FirstLineOnly(t *testing.T) {
	t.Parallel()

	f := &fakeForge{commits: []github.Commit{
		authoredCommit("a", "Add shiny page\n\nfix typo in body text"),
	}}
	s := newSvc(f, testNow)

	got, err := s.WorkTypeStats(context.Background(), "tok", "o", "r", timewin.AllTime)
	require.NoError(t, err)
	require.Equal(t, 1, got.Feature)
	require.Equal(t, 0, got.Bugfix)
}
