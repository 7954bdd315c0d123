// Package domain holds the session DTOs and ports
package domain

import "context"

// Me describes the authenticated viewer
// swagger:model
type Me struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Login         string `json:"login,omitempty"     example:"octocat"`
	Name          string `json:"name,omitempty"      example:"The Octocat"`
	AvatarURL     string `json:"avatarUrl,omitempty" example:"https://avatars.githubusercontent.com/u/1"`
}

// ServicePort resolves the viewer behind a bearer token
type ServicePort interface {
	Whoami(ctx context.Context, bearer string) (Me, error)
}
