// Package domain holds the repositories DTOs and ports
package domain

// Repository is one entry of the viewer's repository listing
// swagger:model
type Repository struct {
	Name        string `json:"name"        example:"gitstats"`
	FullName    string `json:"fullName"    example:"octocat/gitstats"`
	Description string `json:"description" example:"Analytics for your repos"`
	HTMLURL     string `json:"htmlUrl"     example:"https://github.com/octocat/gitstats"`
	IsPrivate   bool   `json:"isPrivate"   example:"false"`
	OwnerLogin  string `json:"ownerLogin"  example:"octocat"`
	UpdatedAt   string `json:"updatedAt"   example:"2026-08-15 12:30:45"`
}

// Contributor is one entry of a repo's contributor listing
// swagger:model
type Contributor struct {
	Login         string `json:"login"         example:"octocat"`
	AvatarURL     string `json:"avatarUrl"     example:"https://avatars.githubusercontent.com/u/1"`
	HTMLURL       string `json:"htmlUrl"       example:"https://github.com/octocat"`
	Contributions int    `json:"contributions" example:"42"`
}

// LanguageStats is one language slice of a repo's byte breakdown
// swagger:model
type LanguageStats struct {
	Language string  `json:"language" example:"Go"`
	Bytes    int64   `json:"bytes"    example:"90210"`
	Percent  float64 `json:"percent"  example:"90.0"`
	Color    string  `json:"color"    example:"#00ADD8"`
}

// BranchInfo is one branch of the network view
type BranchInfo struct {
	Name      string `json:"name"      example:"main"`
	TipSha    string `json:"tipSha"    example:"d670460b4b4aece5915caf5c68d12f560a9fe3e4"`
	IsDefault bool   `json:"isDefault" example:"true"`
}

// CommitNode is one commit of the network view
type CommitNode struct {
	SHA             string   `json:"sha"`
	ShortSha        string   `json:"shortSha"`
	Message         string   `json:"message"`
	AuthorLogin     string   `json:"authorLogin"`
	AuthorAvatarURL string   `json:"authorAvatarUrl"`
	Date            string   `json:"date"`
	ParentShas      []string `json:"parentShas"`
	Branches        []string `json:"branches"`
}

// NetworkGraph is the branch/commit network of a repo
// swagger:model
type NetworkGraph struct {
	Branches      []BranchInfo `json:"branches"`
	Commits       []CommitNode `json:"commits"`
	DefaultBranch string       `json:"defaultBranch"`
}

// TimelinePoint is one bucket of the commit timeline
type TimelinePoint struct {
	Label string `json:"label" example:"Aug 15"`
	Count int    `json:"count" example:"3"`
}

// CommitTimeline is the dense commit activity timeline
// swagger:model
type CommitTimeline struct {
	Period string          `json:"period" example:"day"`
	Points []TimelinePoint `json:"points"`
}

// IssuesTimelinePoint is one bucket of the issues timeline
type IssuesTimelinePoint struct {
	Label  string `json:"label"  example:"Aug 15"`
	Opened int    `json:"opened" example:"2"`
	Closed int    `json:"closed" example:"1"`
}

// IssuesTimeline is the dense issue activity timeline
// swagger:model
type IssuesTimeline struct {
	Period      string                `json:"period" example:"day"`
	Points      []IssuesTimelinePoint `json:"points"`
	TotalOpen   int                   `json:"totalOpen"   example:"5"`
	TotalClosed int                   `json:"totalClosed" example:"3"`
}

// PRTimelinePoint is one bucket of the pull request timeline
type PRTimelinePoint struct {
	Label  string `json:"label"  example:"Aug 15"`
	Opened int    `json:"opened" example:"2"`
	Merged int    `json:"merged" example:"1"`
}

// PullRequestsTimeline is the dense pull request activity timeline
// swagger:model
type PullRequestsTimeline struct {
	Period      string            `json:"period" example:"day"`
	Points      []PRTimelinePoint `json:"points"`
	TotalOpen   int               `json:"totalOpen"   example:"4"`
	TotalMerged int               `json:"totalMerged" example:"2"`
}

// CommitStats is the per-contributor stat block over one window
// swagger:model
type CommitStats struct {
	AuthorLogin           string  `json:"authorLogin"           example:"octocat"`
	Period                string  `json:"period"                example:"LAST_WEEK"`
	CommitCount           int     `json:"commitCount"           example:"2"`
	AvgCommitSizeLines    float64 `json:"avgCommitSizeLines"    example:"17.5"`
	TotalLinesAdded       int     `json:"totalLinesAdded"       example:"30"`
	TotalLinesDeleted     int     `json:"totalLinesDeleted"     example:"5"`
	NetLinesChanged       int     `json:"netLinesChanged"       example:"25"`
	DistinctFilesTouched  int     `json:"distinctFilesTouched"  example:"3"`
	TopFilesModifiedCount int     `json:"topFilesModifiedCount" example:"3"`
	MainLanguagesCount    int     `json:"mainLanguagesCount"    example:"2"`
	IssuesOpened          int     `json:"issuesOpened"          example:"1"`
	IssuesClosed          int     `json:"issuesClosed"          example:"0"`
	PRsOpened             int     `json:"prsOpened"             example:"1"`
	PRsMerged             int     `json:"prsMerged"             example:"1"`
	PRsClosed             int     `json:"prsClosed"             example:"1"`
}

// ContributionRow is one author's share of commits in a window
type ContributionRow struct {
	Login       string  `json:"login"       example:"octocat"`
	CommitCount int     `json:"commitCount" example:"12"`
	Percent     float64 `json:"percent"     example:"60.0"`
}

// ContributionStats partitions a window's commits by author
// swagger:model
type ContributionStats struct {
	Owner        string            `json:"owner"  example:"octocat"`
	Repo         string            `json:"repo"   example:"gitstats"`
	Period       string            `json:"period" example:"ALL_TIME"`
	Contributors []ContributionRow `json:"contributors"`
}

// WorkTypeStats classifies a window's commits by message keywords
// swagger:model
type WorkTypeStats struct {
	Owner    string `json:"owner"  example:"octocat"`
	Repo     string `json:"repo"   example:"gitstats"`
	Period   string `json:"period" example:"ALL_TIME"`
	Feature  int    `json:"feature"  example:"5"`
	Bugfix   int    `json:"bugfix"   example:"3"`
	Test     int    `json:"test"     example:"2"`
	Docs     int    `json:"docs"     example:"1"`
	Refactor int    `json:"refactor" example:"1"`
}
