package httpkit

import (
	"gitstats/internal/platform/net/middleware"
)

// Protected groups routes behind bearer resolution. Handlers mounted
// inside the group can rely on a bearer being present on the context
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
