// Package module wires repository analytics into the API using modkit
package module

import (
	"net/http"

	modkit "gitstats/internal/modkit"
	"gitstats/internal/modkit/httpkit"
	str "gitstats/internal/platform/strings"
	reposhttp "gitstats/internal/services/api/repositories/http"
	repossvc "gitstats/internal/services/api/repositories/service"
)

// Module implements the repositories module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc repossvc.Service
}

// New constructs the repositories module. Every route requires a
// resolved bearer, so the whole subtree mounts behind Protected
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("repositories"),
		modkit.WithPrefix("/repositories"),
	}, opts...)...)

	svc := repossvc.New(deps.Forge)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Stats: svc}

	port := httpkit.NewPort(deps.Token)
	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, port, func(gr httpkit.Router) {
			reposhttp.Register(gr, m.svc)
			if external != nil {
				external(gr)
			}
		})
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
