//go:build wireinject
// +build wireinject

package di

import (
	"hotelsite/config"
	"hotelsite/infras/kafka"
	"hotelsite/infras/otel"
	"hotelsite/infras/postgres"
	"hotelsite/infras/redis"
	"hotelsite/infras/s3"
	"hotelsite/infras/telegram"
	"hotelsite/internal/notifier"
	"hotelsite/shared/cache"
	"hotelsite/transport/http"
	"hotelsite/transport/http/middleware"
	"hotelsite/transport/http/router"

	"github.com/google/wire"

	adminService "hotelsite/internal/domains/admin/service"
	blogRepository "hotelsite/internal/domains/blog/repository"
	blogService "hotelsite/internal/domains/blog/service"
	bookingRepository "hotelsite/internal/domains/booking/repository"
	bookingService "hotelsite/internal/domains/booking/service"
	galleryRepository "hotelsite/internal/domains/gallery/repository"
	galleryService "hotelsite/internal/domains/gallery/service"
	offerRepository "hotelsite/internal/domains/offer/repository"
	offerService "hotelsite/internal/domains/offer/service"
	packagesRepository "hotelsite/internal/domains/packages/repository"
	packagesService "hotelsite/internal/domains/packages/service"
	roomRepository "hotelsite/internal/domains/room/repository"
	roomService "hotelsite/internal/domains/room/service"

	adminHandler "hotelsite/internal/handlers/admin"
	blogHandler "hotelsite/internal/handlers/blog"
	bookingHandler "hotelsite/internal/handlers/booking"
	galleryHandler "hotelsite/internal/handlers/gallery"
	offerHandler "hotelsite/internal/handlers/offer"
	packagesHandler "hotelsite/internal/handlers/packages"
	roomHandler "hotelsite/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewPackageBooking,
	bookingService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var offerDomain = wire.NewSet(
	offerRepository.New,
	offerService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var packagesDomain = wire.NewSet(
	packagesRepository.New,
	packagesService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	galleryDomain,
	offerDomain,
	blogDomain,
	packagesDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	galleryHandler.New,
	offerHandler.New,
	blogHandler.New,
	packagesHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

var notifierInfrastructures = wire.NewSet(
	otel.New,
	kafka.New,
	telegram.New,
)

func InitializeNotifier() (*notifier.Notifier, func()) {
	wire.Build(
		configurations,
		notifierInfrastructures,
		notifier.New,
	)

	return &notifier.Notifier{}, nil
}
