package router

import (
	"armada/internal/handlers/auth"
	"armada/internal/handlers/booking"
	"armada/internal/handlers/bus"
	"armada/internal/handlers/dashboard"
	"armada/internal/handlers/faq"
	"armada/internal/handlers/job"
	"armada/internal/handlers/layanan"
	"armada/internal/handlers/maintenance"
	"armada/internal/handlers/promo"
	"armada/internal/handlers/schedule"
	"armada/internal/handlers/team"
	"armada/internal/handlers/testimonial"
	"armada/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Booking     booking.Handler
	Bus         bus.Handler
	Team        team.Handler
	FAQ         faq.Handler
	Job         job.Handler
	Maintenance maintenance.Handler
	Promo       promo.Handler
	Schedule    schedule.Handler
	Layanan     layanan.Handler
	Testimonial testimonial.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Bus.Router(routerGroup)
		r.DomainHandlers.Team.Router(routerGroup)
		r.DomainHandlers.FAQ.Router(routerGroup)
		r.DomainHandlers.Job.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Promo.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Layanan.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
