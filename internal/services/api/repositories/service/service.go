// Package service contains the repository aggregation workflows
package service

import (
	"time"

	perr "gitstats/internal/platform/errors"
	"gitstats/internal/services/api/repositories/domain"
)

const (
	repoTimeFormat   = "2006-01-02 15:04:05"
	commitTimeFormat = "2006-01-02 15:04"
)

// Service defines the repositories service contract
type Service interface {
	domain.ServicePort
}

// Svc aggregates forge responses into the API's derived structures.
// Stateless across requests; the bearer flows in per call
type Svc struct {
	forge domain.ForgePort
	now   func() time.Time
}

// New constructs a repositories service
func New(forge domain.ForgePort) *Svc {
	if forge == nil {
		panic("repositories.Service requires a non nil forge port")
	}
	return &Svc{forge: forge, now: time.Now}
}

// loadErr tags an upstream failure with an endpoint-specific message.
// Auth and cancellation pass through untouched so the transport maps
// them to 401 and client-gone respectively
func loadErr(err error, what string) error {
	if err == nil {
		return nil
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUnauthorized, perr.ErrorCodeCanceled:
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeUpstream, "Error loading "+what)
}

// reformat parses an ISO-8601 timestamp and renders it under layout,
// keeping the raw string when upstream sends something unparsable
func reformat(raw, layout string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(layout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
