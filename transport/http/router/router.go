package router

import (
	"appointly/internal/handlers/appointment"
	"appointly/internal/handlers/appointmenttype"
	"appointly/internal/handlers/business"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Business        business.Handler
	AppointmentType appointmenttype.Handler
	Appointment     appointment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Business.Router(routerGroup)
		r.DomainHandlers.AppointmentType.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
