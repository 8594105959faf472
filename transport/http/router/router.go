package router

import (
	"hotelsite/internal/handlers/admin"
	"hotelsite/internal/handlers/blog"
	"hotelsite/internal/handlers/booking"
	"hotelsite/internal/handlers/gallery"
	"hotelsite/internal/handlers/offer"
	"hotelsite/internal/handlers/packages"
	"hotelsite/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room     room.Handler
	Booking  booking.Handler
	Gallery  gallery.Handler
	Offer    offer.Handler
	Blog     blog.Handler
	Packages packages.Handler
	Admin    admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Offer.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Packages.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
