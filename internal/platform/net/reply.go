package net

import (
	"net/http"

	perr "gitstats/internal/platform/errors"
)

// Error builds the error wire for any transport.
// Success payloads are written bare (the SPA consumes plain DTOs), so the
// only shared shape transports need is the error body
func Error(err error) (int, perr.Wire) {
	if err == nil {
		return http.StatusOK, perr.Wire{}
	}
	return perr.HTTPStatus(err), perr.WireFrom(err)
}
