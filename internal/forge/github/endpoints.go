package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// CommitsQuery narrows the commit list endpoint. Zero-value fields are omitted
type CommitsQuery struct {
	SHA    string
	Author string
	Since  string
}

func (q CommitsQuery) values(perPage, page int) url.Values {
	v := url.Values{}
	v.Set("per_page", strconv.Itoa(perPage))
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if q.SHA != "" {
		v.Set("sha", q.SHA)
	}
	if q.Author != "" {
		v.Set("author", q.Author)
	}
	if q.Since != "" {
		v.Set("since", q.Since)
	}
	return v
}

// Viewer fetches the authenticated user
func (c *Client) Viewer(ctx context.Context, bearer string) (User, error) {
	var out User
	err := c.GetJSON(ctx, "/user", nil, bearer, &out)
	return out, err
}

// ViewerRepos fetches the viewer's repositories, most recently updated first.
// Single page; the UI shows at most a hundred anyway
func (c *Client) ViewerRepos(ctx context.Context, bearer string) ([]Repo, error) {
	v := url.Values{}
	v.Set("sort", "updated")
	v.Set("per_page", strconv.Itoa(PageSize))
	var out []Repo
	err := c.GetJSON(ctx, "/user/repos", v, bearer, &out)
	return out, err
}

// Repo fetches a single repository document
func (c *Client) Repo(ctx context.Context, bearer, owner, name string) (Repo, error) {
	var out Repo
	err := c.GetJSON(ctx, fmt.Sprintf("/repos/%s/%s", owner, name), nil, bearer, &out)
	return out, err
}

// Branches fetches one page of branches
func (c *Client) Branches(ctx context.Context, bearer, owner, name string) ([]Branch, error) {
	v := url.Values{}
	v.Set("per_page", strconv.Itoa(PageSize))
	var out []Branch
	err := c.GetJSON(ctx, fmt.Sprintf("/repos/%s/%s/branches", owner, name), v, bearer, &out)
	return out, err
}

// Contributors fetches the contributor list, upstream order, no pagination
func (c *Client) Contributors(ctx context.Context, bearer, owner, name string) ([]Contributor, error) {
	var out []Contributor
	err := c.GetJSON(ctx, fmt.Sprintf("/repos/%s/%s/contributors", owner, name), nil, bearer, &out)
	return out, err
}

// Languages fetches the language byte breakdown for a repo
func (c *Client) Languages(ctx context.Context, bearer, owner, name string) (map[string]int64, error) {
	var out map[string]int64
	err := c.GetJSON(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, name), nil, bearer, &out)
	return out, err
}

// Commits pages through the commit list endpoint
func (c *Client) Commits(ctx context.Context, bearer, owner, name string, q CommitsQuery) ([]Commit, error) {
	path := fmt.Sprintf("/repos/%s/%s/commits", owner, name)
	return Pages(func(page int) ([]Commit, error) {
		var out []Commit
		err := c.GetJSON(ctx, path, q.values(PageSize, page), bearer, &out)
		return out, err
	})
}

// CommitsPage fetches a single page of commits with an explicit page size.
// The network view never walks past the first page
func (c *Client) CommitsPage(ctx context.Context, bearer, owner, name string, q CommitsQuery, perPage int) ([]Commit, error) {
	var out []Commit
	path := fmt.Sprintf("/repos/%s/%s/commits", owner, name)
	err := c.GetJSON(ctx, path, q.values(perPage, 0), bearer, &out)
	return out, err
}

// CommitDetail fetches the full commit document including stats and files
func (c *Client) CommitDetail(ctx context.Context, bearer, owner, name, sha string) (CommitDetail, error) {
	var out CommitDetail
	err := c.GetJSON(ctx, fmt.Sprintf("/repos/%s/%s/commits/%s", owner, name, sha), nil, bearer, &out)
	return out, err
}

// IssuesQuery narrows the issues endpoint
type IssuesQuery struct {
	State string
	Since string

	// Filter widens the listing beyond issues assigned to the viewer
	Filter string
}

// Issues pages through the issues endpoint. PR records come back too;
// callers skip them via Issue.IsPull
func (c *Client) Issues(ctx context.Context, bearer, owner, name string, q IssuesQuery) ([]Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, name)
	return Pages(func(page int) ([]Issue, error) {
		v := url.Values{}
		v.Set("per_page", strconv.Itoa(PageSize))
		v.Set("page", strconv.Itoa(page))
		if q.State != "" {
			v.Set("state", q.State)
		}
		if q.Since != "" {
			v.Set("since", q.Since)
		}
		if q.Filter != "" {
			v.Set("filter", q.Filter)
		}
		var out []Issue
		err := c.GetJSON(ctx, path, v, bearer, &out)
		return out, err
	})
}

// Pulls pages through the pulls endpoint for one state
func (c *Client) Pulls(ctx context.Context, bearer, owner, name, state string) ([]Pull, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, name)
	return Pages(func(page int) ([]Pull, error) {
		v := url.Values{}
		v.Set("per_page", strconv.Itoa(PageSize))
		v.Set("page", strconv.Itoa(page))
		if state != "" {
			v.Set("state", state)
		}
		var out []Pull
		err := c.GetJSON(ctx, path, v, bearer, &out)
		return out, err
	})
}

// Ping hits the rate-limit endpoint as a cheap upstream health probe
func (c *Client) Ping(ctx context.Context, bearer string) error {
	var out struct {
		Rate struct {
			Limit int `json:"limit"`
		} `json:"rate"`
	}
	return c.GetJSON(ctx, "/rate_limit", nil, bearer, &out)
}
