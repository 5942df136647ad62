//go:build wireinject
// +build wireinject

package di

import (
	"crowd/config"
	"crowd/infras/events"
	"crowd/infras/redis"
	"crowd/infras/s3"
	"crowd/shared/cache"
	"crowd/shared/timezone"
	"crowd/transport/http"
	"crowd/transport/http/middleware"
	"crowd/transport/http/router"

	adminHandler "crowd/internal/handlers/admin"
	bookingHandler "crowd/internal/handlers/booking"
	centerHandler "crowd/internal/handlers/center"

	bookingRepository "crowd/internal/domains/booking/repository"
	bookingService "crowd/internal/domains/booking/service"
	centerRepository "crowd/internal/domains/center/repository"
	centerService "crowd/internal/domains/center/service"
	"crowd/internal/domains/slot/policy"
	slotRepository "crowd/internal/domains/slot/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideDatabase,
	provideOtel,
	provideEvents,
	wire.Bind(new(events.Publisher), new(events.Bus)),
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	policy.FromConfig,
)

var centerDomain = wire.NewSet(
	centerRepository.New,
	centerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	slotDomain,
	centerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	centerHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}

func InitializeNotifier() (events.Bus, func(), error) {
	wire.Build(
		configurations,
		provideOtel,
		provideEvents,
	)

	return nil, nil, nil
}
