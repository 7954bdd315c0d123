// Package service resolves the viewer identity behind a bearer
package service

import (
	"context"

	"gitstats/internal/forge/github"
	"gitstats/internal/services/api/session/domain"
)

// ViewerPort is the slice of the forge client this service consumes
type ViewerPort interface {
	Viewer(ctx context.Context, bearer string) (github.User, error)
}

// Service defines the session service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the session service
type Svc struct {
	forge ViewerPort
}

// New constructs a session service
func New(forge ViewerPort) *Svc {
	if forge == nil {
		panic("session.Service requires a non nil forge port")
	}
	return &Svc{forge: forge}
}

// Whoami resolves the bearer to a viewer profile.
// A null display name falls back to the login
func (s *Svc) Whoami(ctx context.Context, bearer string) (domain.Me, error) {
	u, err := s.forge.Viewer(ctx, bearer)
	if err != nil {
		return domain.Me{}, err
	}

	name := u.Login
	if u.Name != nil && *u.Name != "" {
		name = *u.Name
	}
	return domain.Me{
		Authenticated: true,
		Login:         u.Login,
		Name:          name,
		AvatarURL:     u.AvatarURL,
	}, nil
}
