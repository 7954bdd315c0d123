package service

import (
	"context"

	"gitstats/internal/services/api/repositories/domain"
)

// UserRepos lists the viewer's repositories, most recently updated first
func (s *Svc) UserRepos(ctx context.Context, bearer string) ([]domain.Repository, error) {
	repos, err := s.forge.ViewerRepos(ctx, bearer)
	if err != nil {
		return nil, loadErr(err, "repositories")
	}

	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		var owner string
		if r.Owner != nil {
			owner = r.Owner.Login
		}
		out = append(out, domain.Repository{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: deref(r.Description),
			HTMLURL:     deref(r.HTMLURL),
			IsPrivate:   r.Private,
			OwnerLogin:  owner,
			UpdatedAt:   reformat(r.UpdatedAt, repoTimeFormat),
		})
	}
	return out, nil
}

// Contributors lists a repo's contributors in upstream order
func (s *Svc) Contributors(ctx context.Context, bearer, owner, repo string) ([]domain.Contributor, error) {
	rows, err := s.forge.Contributors(ctx, bearer, owner, repo)
	if err != nil {
		return nil, loadErr(err, "contributors")
	}

	out := make([]domain.Contributor, 0, len(rows))
	for _, c := range rows {
		out = append(out, domain.Contributor{
			Login:         c.Login,
			AvatarURL:     c.AvatarURL,
			HTMLURL:       c.HTMLURL,
			Contributions: c.Contributions,
		})
	}
	return out, nil
}
