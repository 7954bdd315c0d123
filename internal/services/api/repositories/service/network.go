package service

import (
	"context"
	"strings"

	"gitstats/internal/forge/github"
	"gitstats/internal/services/api/repositories/domain"
)

const (
	fallbackBranch = "main"
	shortShaLen    = 7
	messageMax     = 72
)

// Network assembles the branch/commit network view rooted at the
// default branch. maxCommits is clamped to one upstream page
func (s *Svc) Network(ctx context.Context, bearer, owner, repo string, maxCommits int) (domain.NetworkGraph, error) {
	if maxCommits <= 0 || maxCommits > github.PageSize {
		maxCommits = github.PageSize
	}

	rp, err := s.forge.Repo(ctx, bearer, owner, repo)
	if err != nil {
		return domain.NetworkGraph{}, loadErr(err, "network")
	}
	defaultBranch := deref(rp.DefaultBranch)
	if strings.TrimSpace(defaultBranch) == "" {
		defaultBranch = fallbackBranch
	}

	branches, err := s.forge.Branches(ctx, bearer, owner, repo)
	if err != nil {
		return domain.NetworkGraph{}, loadErr(err, "network")
	}

	infos := make([]domain.BranchInfo, 0, len(branches))
	shaToBranches := make(map[string][]string, len(branches))
	for _, b := range branches {
		infos = append(infos, domain.BranchInfo{
			Name:      b.Name,
			TipSha:    b.Commit.SHA,
			IsDefault: b.Name == defaultBranch,
		})
		shaToBranches[b.Commit.SHA] = append(shaToBranches[b.Commit.SHA], b.Name)
	}

	commits, err := s.forge.CommitsPage(ctx, bearer, owner, repo, github.CommitsQuery{SHA: defaultBranch}, maxCommits)
	if err != nil {
		return domain.NetworkGraph{}, loadErr(err, "network")
	}

	nodes := make([]domain.CommitNode, 0, len(commits))
	for _, c := range commits {
		nodes = append(nodes, commitNode(c, shaToBranches))
	}

	return domain.NetworkGraph{
		Branches:      infos,
		Commits:       nodes,
		DefaultBranch: defaultBranch,
	}, nil
}

func commitNode(c github.Commit, shaToBranches map[string][]string) domain.CommitNode {
	login, avatar := commitAuthor(c)

	var date string
	if c.Commit.Author != nil {
		date = reformat(c.Commit.Author.Date, commitTimeFormat)
	}

	parents := make([]string, 0, len(c.Parents))
	for _, p := range c.Parents {
		parents = append(parents, p.SHA)
	}

	branches := shaToBranches[c.SHA]
	if branches == nil {
		branches = []string{}
	}

	return domain.CommitNode{
		SHA:             c.SHA,
		ShortSha:        shortSha(c.SHA),
		Message:         firstLine(c.Commit.Message),
		AuthorLogin:     login,
		AuthorAvatarURL: avatar,
		Date:            date,
		ParentShas:      parents,
		Branches:        branches,
	}
}

// commitAuthor prefers the linked account; deleted accounts fall back
// to the git signature name with no avatar
func commitAuthor(c github.Commit) (login, avatar string) {
	if c.Author != nil && c.Author.Login != "" {
		return c.Author.Login, c.Author.AvatarURL
	}
	if c.Commit.Author != nil {
		return c.Commit.Author.Name, ""
	}
	return "Unknown", ""
}

func shortSha(sha string) string {
	if len(sha) > shortShaLen {
		return sha[:shortShaLen]
	}
	return sha
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	if len(message) > messageMax {
		return message[:messageMax-3] + "..."
	}
	return message
}
