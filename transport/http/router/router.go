package router

import (
	"lbm/internal/handlers/auth"
	"lbm/internal/handlers/booking"
	"lbm/internal/handlers/content"
	"lbm/internal/handlers/health"
	"lbm/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Content content.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
}

// SetupRoutes mounts everything under /api. Health endpoints stay outside the
// database gate so they keep answering while the database is down.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)

		routerGroup.Group(func(gated chi.Router) {
			gated.Use(r.App.DatabaseGate)

			r.DomainHandlers.Auth.Router(gated)
			r.DomainHandlers.Booking.Router(gated)
			r.DomainHandlers.Content.Router(gated)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
	}
}
