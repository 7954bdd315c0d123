// Package http provides the session endpoint
package http

import (
	stdhttp "net/http"

	"gitstats/internal/modkit/httpkit"
	perr "gitstats/internal/platform/errors"
	"gitstats/internal/platform/net/middleware"
	"gitstats/internal/services/api/session/domain"
	svc "gitstats/internal/services/api/session/service"
)

// Register mounts the session endpoint. The route is deliberately
// unguarded: an anonymous caller gets a 401 body, not an error wire
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s, auth: auth}
	r.Get("/", httpkit.Handle(h.me))
}

type handlers struct {
	svc  svc.Service
	auth middleware.AuthPort
}

// swagger:route GET /me Session whoami
// @Summary Resolve the authenticated viewer
// @Tags Session
// @Produce json
// @Success 200 {object} domain.Me "ok"
// @Failure 401 {object} domain.Me "anonymous"
// @Router /me [get]
func (h *handlers) me(r *stdhttp.Request) httpkit.Response {
	bearer, err := h.auth.Parse(r)
	if err != nil {
		return httpkit.With(stdhttp.StatusUnauthorized, domain.Me{})
	}

	me, err := h.svc.Whoami(r.Context(), bearer)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeUnauthorized) {
			return httpkit.With(stdhttp.StatusUnauthorized, domain.Me{})
		}
		return httpkit.Error(err)
	}
	return httpkit.OK(me)
}
