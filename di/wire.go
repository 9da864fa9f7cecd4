//go:build wireinject
// +build wireinject

package di

import (
	"lbm/config"
	"lbm/infras/jwt"
	"lbm/infras/otel"
	"lbm/infras/postgres"
	"lbm/infras/redis"
	"lbm/shared/cache"
	"lbm/transport/http"
	"lbm/transport/http/middleware"
	"lbm/transport/http/router"

	adminRepository "lbm/internal/domains/admin/repository"
	authService "lbm/internal/domains/auth/service"
	bookingRepository "lbm/internal/domains/booking/repository"
	bookingService "lbm/internal/domains/booking/service"
	contentRepository "lbm/internal/domains/content/repository"
	contentService "lbm/internal/domains/content/service"

	authHandler "lbm/internal/handlers/auth"
	bookingHandler "lbm/internal/handlers/booking"
	contentHandler "lbm/internal/handlers/content"
	healthHandler "lbm/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contentDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contentHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
