package github

import "encoding/json"

// Actor is the minimal user reference GitHub embeds in other documents
type Actor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repo is the upstream repository document
type Repo struct {
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	HTMLURL       *string `json:"html_url"`
	Description   *string `json:"description"`
	Private       bool    `json:"private"`
	DefaultBranch *string `json:"default_branch"`
	UpdatedAt     string  `json:"updated_at"`
	Owner         *Actor  `json:"owner"`
}

// Branch is one entry from the branches list endpoint
type Branch struct {
	Name   string    `json:"name"`
	Commit BranchTip `json:"commit"`
}

// BranchTip carries the sha the branch points at
type BranchTip struct {
	SHA string `json:"sha"`
}

// Commit is a commit header from the list endpoint
type Commit struct {
	SHA     string      `json:"sha"`
	Commit  CommitMeta  `json:"commit"`
	Author  *Actor      `json:"author"`
	Parents []ParentRef `json:"parents"`
}

// CommitMeta is the nested git-level commit object
type CommitMeta struct {
	Message string     `json:"message"`
	Author  *CommitSig `json:"author"`
}

// CommitSig is the git author signature; Date stays a raw string
// so parse failures can fall back to the upstream value
type CommitSig struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// ParentRef is one entry of a commit's parents array
type ParentRef struct {
	SHA string `json:"sha"`
}

// CommitDetail is the full commit document from /commits/{sha}
type CommitDetail struct {
	SHA    string       `json:"sha"`
	Commit CommitMeta   `json:"commit"`
	Author *Actor       `json:"author"`
	Stats  *DiffStats   `json:"stats"`
	Files  []CommitFile `json:"files"`
}

// DiffStats is the additions/deletions summary on a commit detail
type DiffStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

// CommitFile is one changed file on a commit detail
type CommitFile struct {
	Filename string `json:"filename"`
}

// Contributor is one entry from the contributors endpoint
type Contributor struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

// Issue is one entry from the issues endpoint.
// PullRequest is non-empty when the record is actually a PR
type Issue struct {
	Number      int             `json:"number"`
	State       string          `json:"state"`
	CreatedAt   string          `json:"created_at"`
	ClosedAt    *string         `json:"closed_at"`
	User        *Actor          `json:"user"`
	PullRequest json.RawMessage `json:"pull_request,omitempty"`
}

// IsPull reports whether the issue record is a pull request in disguise
func (i Issue) IsPull() bool { return len(i.PullRequest) > 0 }

// Pull is one entry from the pulls endpoint
type Pull struct {
	Number    int     `json:"number"`
	State     string  `json:"state"`
	CreatedAt string  `json:"created_at"`
	ClosedAt  *string `json:"closed_at"`
	MergedAt  *string `json:"merged_at"`
	User      *Actor  `json:"user"`
}

// User is the authenticated viewer document from /user
type User struct {
	Login     string  `json:"login"`
	Name      *string `json:"name"`
	AvatarURL string  `json:"avatar_url"`
}
